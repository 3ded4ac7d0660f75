// format.go — the bounded chain traversal at the heart of xgx-chain.
//
// Behavior:
//
//   Fprint(w, err) → err.Error() ": " cause.Error() ": " ... written to w,
//   root-to-leaf order, at most MessageLimit messages; if a link remains
//   after the limit, ": ..." is written and traversal ends.
//
// Rationale:
//   - The limit is a structural bound on iterations, not display trimming:
//     a cyclic Unwrap chain terminates after MessageLimit links with bounded
//     output, no cycle detection required.
//   - Sink errors propagate verbatim and abort the remaining traversal;
//     nothing already written is taken back. The traversal itself cannot fail
//     and performs no allocation.
package xgxchain

import (
	"errors"
	"io"
)

// MessageLimit is the maximum number of messages printed for a single chain,
// counting the root. If links remain past the limit, they are replaced by a
// single Overflow marker. Part of the output stability contract.
const MessageLimit = 1024

// Separator is written between adjacent messages. Part of the output
// stability contract.
const Separator = ": "

// Overflow is the marker standing in for the suppressed remainder of an
// over-limit chain. It is preceded by Separator, so an over-limit chain ends
// in ": ...". Part of the output stability contract.
const Overflow = "..."

// Fprint writes err's message and the messages of its whole cause chain to w,
// joined by Separator, bounded by MessageLimit. A nil err writes nothing.
// The only error Fprint can return is a write error from w, returned as-is.
func Fprint(w io.Writer, err error) error {
	return fprint(w, err, MessageLimit)
}

// fprint is Fprint with the bound as a parameter, for tests.
func fprint(w io.Writer, err error, limit int) error {
	for n := 0; err != nil; n++ {
		if n >= limit {
			_, werr := io.WriteString(w, Separator+Overflow)
			return werr
		}
		if n > 0 {
			if _, werr := io.WriteString(w, Separator); werr != nil {
				return werr
			}
		}
		if _, werr := io.WriteString(w, err.Error()); werr != nil {
			return werr
		}
		err = errors.Unwrap(err)
	}
	return nil
}
