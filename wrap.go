// wrap.go — a minimal link constructor for building chains by hand.
//
// Purpose
//   - Compose chains whose links each report ONLY their own message, so the
//     formatter owns the joining. fmt.Errorf("m: %w", cause) bakes the
//     cause's text into the wrapper's Error(), which doubles every message
//     once the chain is joined; Link does not.
//   - Stay policy-free: no codes, no context fields, no stack capture.
package xgxchain

// Link returns an error whose Error() is msg alone and whose Unwrap() is
// cause. cause may be nil, making the link a chain of one.
//
//	err := xgxchain.Link("upload failed", permissionErr)
//	xgxchain.String(err) // "upload failed: permission denied"
func Link(msg string, cause error) error {
	return &linkErr{msg: msg, cause: cause}
}

type linkErr struct {
	msg   string
	cause error
}

func (e *linkErr) Error() string { return e.msg }

func (e *linkErr) Unwrap() error { return e.cause }
