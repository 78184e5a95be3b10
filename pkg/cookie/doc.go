// Package cookie provides strongly typed, name-addressed access to the
// per-request cookie storage.
//
// A cookie kind is declared once, at package level, by binding its wire
// name to the Go types it reads into and writes from:
//
//	type Session struct {
//		ID   string `json:"id"`
//		User string `json:"user"`
//	}
//
//	var SessionCookie = cookie.Type[Session, Session]{Name: "__session"}
//	var ThemeCookie = cookie.ReadType[string]{Name: "theme"}
//	var TraceCookie = cookie.WriteType[[]string]{Name: "trace"}
//
// Inside a handler, bind the declaration to the request's storage to get a
// handle:
//
//	st, _ := server.GetStorageFromContext(r.Context())
//	session := SessionCookie.Bind(st)
//
//	s, err := session.Get()
//	if err != nil { ... }
//	_ = session.Insert(Session{ID: id, User: "ana"})
//
// # Capabilities
//
// ReadType yields a Reader (Get, GetAll); WriteType yields a Writer
// (Insert, Remove, Discard, With); Type yields a Cookie embedding both.
// A kind declared without a shape simply has no handle methods for it —
// misuse fails at compile time, not at run time.
//
// # Serialization and attributes
//
// Values are JSON by default. A WriteType/Type can override Serialize for a
// custom wire form and Attributes for its default attribute set; a call
// site can swap the whole attribute set with Writer.With. Resolution is
// all-or-nothing: With'd attributes replace the type default entirely.
//
// # Collections
//
// Handlers that touch several cookies usually bundle their handles in a
// plain struct built from the one shared storage:
//
//	type Cookies struct {
//		Session cookie.Cookie[Session, Session]
//		Theme   cookie.Reader[string]
//	}
//
//	func newCookies(st *storage.Storage) Cookies {
//		return Cookies{
//			Session: SessionCookie.Bind(st),
//			Theme:   ThemeCookie.Bind(st),
//		}
//	}
//
// Get and GetAll return *NotFoundError and *DeserializationError as plain
// error values; both are recoverable and neither panics.
package cookie
