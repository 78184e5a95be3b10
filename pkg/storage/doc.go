// Package storage holds the per-request cookie collections shared between
// the middleware and typed cookie handles.
//
// A Storage pairs two independent collections:
//
//   - the inbound collection, a name-keyed multi-map populated from the
//     request's Cookie header (read-only once the handler runs), and
//   - the outbound collection, the Set-Cookie entries queued for the
//     response, keyed by (name, path, domain) with last-write-wins
//     replacement and stable first-insertion order.
//
// # Lifecycle
//
// The middleware creates one Storage per request, attaches it to the
// request context, and drains it exactly once after the handler returns.
// Handles constructed from the same Storage all see and mutate the same
// pending response state.
//
//	st := storage.New()
//	st.Append("session", raw)           // middleware, inbound
//	v, ok := st.Get("session")          // handle, read
//	st.Insert(storage.NewResponseCookie("theme", `"dark"`, attrs))
//	st.Remove("session", attrs)         // removal sentinel
//	st.Discard("theme", attrs)          // retract a pending entry
//	pending := st.Drain()               // middleware, outbound
//
// # Identity
//
// Outbound replacement is keyed by SetID — the (name, path, domain) triple —
// because browsers store cookies under that identity. Remove and Discard
// resolve the same triple from the attribute set they are given, so they
// address exactly the entry a matching Insert produced.
//
// No Storage operation fails; absence is reported with ok booleans or empty
// results. A Storage belongs to one request and is not safe for concurrent
// use.
package storage
