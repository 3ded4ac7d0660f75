// chain.go — the Chain wrapper: a view over an error that renders the full
// cause chain wherever a single error value is expected by fmt.
//
// Chain is transient and holds only the borrowed root; constructing one
// allocates nothing and formatting one leaves the chain untouched. It is not
// itself an error — wrapping is for display, not for propagation.
package xgxchain

import (
	"fmt"
	"io"
	"strings"
)

// Chain wraps an error so that formatting it prints the error together with
// its whole cause chain on one line (see Fprint for the exact output).
//
//	return fmt.Errorf("sync aborted: %v", xgxchain.New(err))
type Chain struct {
	err error
}

// New returns a Chain view over err. err may be nil; the resulting Chain
// renders as the empty string.
func New(err error) Chain {
	return Chain{err: err}
}

// Err returns the wrapped root error (nil for an empty Chain).
func (c Chain) Err() error {
	return c.err
}

var _ fmt.Formatter = Chain{}
var _ fmt.Stringer = Chain{}
var _ io.WriterTo = Chain{}

// Format implements fmt.Formatter. %v and %s (and any other verb) render the
// joined chain; %q renders it quoted. Flags are accepted and ignored.
func (c Chain) Format(s fmt.State, verb rune) {
	switch verb {
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", c.String())
	default:
		// fmt cannot surface sink errors from here; ignore them like any
		// other formatting path.
		_ = fprint(s, c.err, MessageLimit)
	}
}

// WriteTo implements io.WriterTo: the allocation-free tier with byte
// accounting. It returns the number of bytes written to w and the first
// write error, if any.
func (c Chain) WriteTo(w io.Writer) (int64, error) {
	cw := countWriter{w: w}
	err := fprint(&cw, c.err, MessageLimit)
	return cw.n, err
}

// String implements fmt.Stringer by buffering the chain into an owned string.
// This is the allocating tier; callers streaming to a sink should prefer
// WriteTo or Fprint.
func (c Chain) String() string {
	if c.err == nil {
		return ""
	}
	var b strings.Builder
	// strings.Builder writes never fail.
	_ = fprint(&b, c.err, MessageLimit)
	return b.String()
}

// countWriter forwards to w and tallies bytes written.
type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
