// Package server provides the HTTP middleware that runs the per-request
// cookie lifecycle.
//
// The middleware sits between net/http and application handlers. For every
// request it parses the Cookie header, runs each pair through the
// processor's protection step, and attaches the resulting storage to the
// request context. After the handler returns it drains the outbound
// collection, protects and renders each entry, and appends one Set-Cookie
// header per entry to the response.
//
// # Basic Usage
//
//	proc := processor.Config{}.Processor()
//	middleware := server.New(proc)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    st, ok := server.GetStorageFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "no cookie storage", http.StatusInternalServerError)
//	        return
//	    }
//	    session := SessionCookie.Bind(st)
//	    // ...
//	})
//
//	http.Handle("/", middleware.Wrap(handler))
//
// # Lifecycle
//
// The middleware performs the following steps for each request:
//
//  1. Creates an empty per-request Storage
//  2. Splits the Cookie header on ";" and validates each name=value pair
//  3. Runs each pair through processor.ProcessIncoming (decode, verify,
//     decrypt)
//  4. Attaches the populated Storage to the request context
//  5. Calls the next handler against a buffered response writer
//  6. Drains the outbound collection and renders it through
//     processor.RenderOutgoing
//  7. Appends each rendered value as a Set-Cookie header and flushes the
//     buffered response
//
// # Error Policy
//
// Cookie handling is all-or-nothing. A malformed header segment or a cookie
// that fails verification aborts the request before the handler runs; there
// is no "drop the bad cookie and continue" path. A render failure after the
// handler discards the handler's buffered response, since cookies could not
// be safely attached. All three cases go through the ErrorHandler, which
// defaults to a 500 response.
//
//	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	    log.Printf("cookie processing failed: %v", err)
//	    http.Error(w, "Bad Request", http.StatusBadRequest)
//	})
//
// # Cancellation
//
// If the request context is canceled while the handler runs (client
// disconnect), the middleware emits nothing; the buffered response and the
// pending cookies are dropped with it.
//
// # Thread Safety
//
// The middleware itself is safe for concurrent use across requests. Each
// request owns its Storage exclusively; storage access within one request
// is sequential by design.
package server
