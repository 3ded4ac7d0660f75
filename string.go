// string.go — owned-string shorthand over the core tier.
//
// Kept apart from format.go on purpose: Fprint and friends never allocate for
// the traversal, String is the one operation that buffers. Environments that
// must not allocate simply never call it.
package xgxchain

// String returns err's message and the messages of its whole cause chain
// joined by Separator, bounded by MessageLimit. Shorthand for
// New(err).String(). A nil err returns "".
func String(err error) string {
	return New(err).String()
}
