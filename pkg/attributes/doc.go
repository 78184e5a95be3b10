// Package attributes defines the browser-facing attribute set attached to
// outgoing cookies.
//
// An Attributes value collects the optional Set-Cookie attributes: Path,
// Domain, Secure, HttpOnly, Partitioned, SameSite, Max-Age, and Expires,
// plus a permanent shortcut. Fields are tri-state: absent fields are simply
// not rendered, leaving the browser's own default in effect.
//
// # Basic Usage
//
//	attrs := attributes.New().
//		WithPath("/app").
//		WithSameSite(attributes.SameSiteStrict).
//		WithSecure(true)
//
// Attributes is immutable in use: each With* method returns an updated copy,
// so a value declared at package level can be shared safely across requests.
//
// # Defaults
//
// Default() is the set applied when a cookie type declares no attributes:
//
//	Path=/; HttpOnly
//
// # Special Rules
//
//   - WithDomain strips any leading dots from the domain.
//   - WithPermanent(true) supersedes Max-Age and Expires with a 20-year
//     lifetime, computed when the cookie is inserted.
//   - SameSite=None cookies default Secure to true unless Secure was
//     explicitly set to false; browsers reject them otherwise.
//
// Attribute values are not validated here. Path and domain strings are
// rendered as given (minus the leading-dot strip).
package attributes
