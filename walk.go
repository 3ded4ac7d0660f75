// walk.go — bounded traversal helpers over single-unwrap chains.
//
// Scope (tiny core):
//   - Linear traversal only: the chain relation is Unwrap() error, exactly
//     what Fprint renders. Multi-unwrap trees (errors.Join) are leaves here.
//   - Every helper shares the formatter's structural bound: at most
//     MessageLimit links are visited, so cyclic chains cost bounded work.
//   - Nil-safe throughout; nil is the empty chain.
package xgxchain

import "errors"

// Walk calls visit for each link of err's cause chain in root-to-leaf order,
// visiting at most MessageLimit links. If visit returns false, traversal
// stops early. A nil err or nil visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if visit == nil {
		return
	}
	for n := 0; err != nil && n < MessageLimit; n++ {
		if !visit(err) {
			return
		}
		err = errors.Unwrap(err)
	}
}

// Root returns the deepest link of err's cause chain, or nil if err is nil.
// On a chain longer than MessageLimit (cycles included), Root returns the
// last link within the bound.
func Root(err error) error {
	var last error
	Walk(err, func(e error) bool {
		last = e
		return true
	})
	return last
}

// Len returns the number of links in err's cause chain, capped at
// MessageLimit. Len(nil) is 0.
func Len(err error) int {
	n := 0
	Walk(err, func(error) bool {
		n++
		return true
	})
	return n
}
