package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cookiebox-project/cookiebox-go/pkg/processor"
	"github.com/cookiebox-project/cookiebox-go/pkg/storage"
)

type contextKey string

const storageKey contextKey = "cookie_storage"

// ErrorHandler handles cookie processing errors. It runs instead of the
// wrapped handler (parse or protection failure) or instead of the handler's
// buffered response (render failure).
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// CookieMiddleware wires cookie handling around an http.Handler: it parses
// the Cookie header through the processor into a per-request Storage before
// the handler runs, and drains, protects, and emits Set-Cookie headers
// after it returns.
type CookieMiddleware struct {
	processor    *processor.Processor
	errorHandler ErrorHandler
}

// New creates a CookieMiddleware around a processor
func New(p *processor.Processor) *CookieMiddleware {
	return &CookieMiddleware{
		processor:    p,
		errorHandler: defaultErrorHandler,
	}
}

// SetErrorHandler sets a custom error handler
func (m *CookieMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// Wrap wires the middleware around next.
//
// The per-request sequence is strict: every header segment must parse and
// pass the protection step before next runs (one bad cookie fails the whole
// request), and outbound cookies are drained and emitted only after next
// returns, so the last write per (name, path, domain) wins.
func (m *CookieMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := storage.New()

		if err := m.extractCookies(r, st); err != nil {
			m.errorHandler(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), storageKey, st)
		r = r.WithContext(ctx)

		// Buffer the handler's response: a render failure afterwards must
		// be able to discard it wholesale.
		buf := newBufferedResponse(w)
		next.ServeHTTP(buf, r)

		// A canceled handler (client gone) emits nothing.
		if ctx.Err() != nil {
			return
		}

		values, err := m.processor.RenderOutgoing(st.Drain())
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("attaching cookies to response: %w", err))
			return
		}
		for _, value := range values {
			buf.Header().Add("Set-Cookie", value)
		}
		buf.flush()
	})
}

// extractCookies parses the Cookie header through the processor and fills
// the inbound collection. An absent header leaves the collection empty.
func (m *CookieMiddleware) extractCookies(r *http.Request, st *storage.Storage) error {
	header := r.Header.Get("Cookie")
	if header == "" {
		return nil
	}

	for _, segment := range strings.Split(header, ";") {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		name, value, found := strings.Cut(segment, "=")
		if !found {
			return &MalformedHeaderError{
				Segment: segment,
				Reason:  "expected a name-value pair, but no `=` was found",
			}
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if name == "" {
			return &MalformedHeaderError{
				Segment: segment,
				Reason:  "the name of a cookie cannot be empty",
			}
		}

		cookie, err := m.processor.ProcessIncoming(name, value)
		if err != nil {
			return fmt.Errorf("failed to process %q as %s request cookie: %w",
				name, describeProtectionError(err), err)
		}
		st.Append(cookie.Name, cookie.Value)
	}

	return nil
}

// describeProtectionError maps a protection failure to the wording used in
// the request error: the failing class, not the key or MAC details.
func describeProtectionError(err error) string {
	var perr *processor.ProtectionError
	if !errors.As(err, &perr) {
		return "an unknown"
	}
	switch perr.Kind {
	case processor.KindCrypto:
		return "an encrypted"
	case processor.KindDecoding:
		return "a signed"
	default:
		return "an unknown"
	}
}

// GetStorageFromContext extracts the request's cookie storage. It is only
// present on requests that passed through the middleware.
func GetStorageFromContext(ctx context.Context) (*storage.Storage, bool) {
	st, ok := ctx.Value(storageKey).(*storage.Storage)
	return st, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Internal Server Error: %s", err.Error()), http.StatusInternalServerError)
}

// MalformedHeaderError reports a Cookie header segment that violates
// name=value syntax. The whole request fails; storage is never populated
// from a header that does not parse.
type MalformedHeaderError struct {
	// Segment is the offending header segment, untrimmed.
	Segment string
	// Reason says which rule the segment broke.
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed cookie header: %s in %q", e.Reason, e.Segment)
}
