// doc.go — package documentation for xgx-chain
//
// Package xgxchain renders an error together with its full chain of causes as
// a single line of text. It is the smallest possible formatter supporting
// wrapped errors: messages are joined with `": "`, up to 1024 messages per
// chain are printed, after which a single `": ..."` is printed. That's all
// there is to it — no configuration, no advanced features. It is designed to be:
//   - Ergonomic at call sites (one wrapper type, two shorthands)
//   - Interoperable with the stdlib (any error with Unwrap() error works)
//   - Policy-free (no logging/HTTP/JSON in core; writes only to the caller's sink)
//
// # Output Contract
//
// The output is a stability guarantee, not a default:
//
//   - Separator between messages: exactly `": "`.
//   - Overflow marker: exactly `": ..."`, appended only when the chain holds
//     more than MessageLimit links.
//   - MessageLimit: exactly 1024, counting the root.
//
// Any change to these would be a breaking behavioral change.
//
// The `": "` separator follows existing convention (fmt.Errorf("%w") wrapping)
// and keeps the formatted error on a single line when individual messages
// contain no newlines, which keeps the output friendly to tools that handle
// error text line by line.
//
// # Two Tiers
//
// The core tier writes into a caller-supplied sink and performs no allocation
// for the traversal itself:
//
//	err := doUpload()
//	_ = xgxchain.Fprint(os.Stderr, err)            // direct write
//	log.Printf("upload: %v", xgxchain.New(err))    // via the fmt.Formatter wrapper
//
// The buffering tier materializes the line into an owned string and is a
// strict layer above the core:
//
//	msg := xgxchain.String(err)                    // "upload failed: permission denied"
//
// # Chain Model
//
// The chain is the root error followed by repeated errors.Unwrap. Each link
// contributes its own Error() text; the formatter adds no interpretation and
// never mutates or retains a link. Values carrying Unwrap() []error
// (errors.Join trees) are treated as single links: their Error() text is the
// segment, and the multi-unwrap form is not traversed.
//
// MessageLimit is a structural bound on work, not cosmetic truncation: a
// malformed (cyclic) chain still terminates after 1024 links.
//
// A nil error is a valid empty chain everywhere: Fprint writes nothing,
// String returns "".
//
// # Building Chains
//
// Links whose Error() reports only their own message compose best with this
// formatter; Link is provided for that:
//
//	err := xgxchain.Link("upload failed", permissionErr)
//	xgxchain.String(err) // "upload failed: permission denied"
//
// Errors built with fmt.Errorf("...: %w", cause) repeat their cause's text in
// their own Error(); that is the caller's choice, and the formatter passes the
// text through untouched (no deduplication).
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small:
//   - Fprint / String
//   - New → Chain (Format / WriteTo / String)
//   - Walk / Root / Len
//   - Link
//
// Adapters (structured logs, JSON shapes, trees) belong to separate modules in
// the xgx family, not here.
package xgxchain
