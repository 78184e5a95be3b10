// Copyright (C) 2026 Cookiebox Project
//
// This file is part of cookiebox-go.
//
// cookiebox-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cookiebox-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with cookiebox-go.  If not, see <https://www.gnu.org/licenses/>.

package attributes

import (
	"strings"
	"time"
)

// SameSite is the SameSite cookie policy.
type SameSite int

const (
	// SameSiteUnset leaves the attribute off the header (browser default).
	SameSiteUnset SameSite = iota
	// SameSiteStrict renders as SameSite=Strict
	SameSiteStrict
	// SameSiteLax renders as SameSite=Lax
	SameSiteLax
	// SameSiteNone renders as SameSite=None. Browsers require Secure on
	// SameSite=None cookies, so Secure defaults to true for them unless it
	// was explicitly set to false.
	SameSiteNone
)

// String returns the header token for the policy, or "" when unset.
func (s SameSite) String() string {
	switch s {
	case SameSiteStrict:
		return "Strict"
	case SameSiteLax:
		return "Lax"
	case SameSiteNone:
		return "None"
	default:
		return ""
	}
}

// PermanentMaxAge is the lifetime used for permanent cookies: 20 years.
const PermanentMaxAge = 20 * 365 * 24 * time.Hour

// Attributes describes the browser-facing attributes of an outgoing cookie:
// path, domain, security flags, and lifetime.
//
// Attributes is a value type: every With* method returns an updated copy and
// leaves the receiver unchanged, so a set can be declared once and shared
// across requests.
//
//	attrs := attributes.New().
//		WithPath("/app").
//		WithDomain(".example.com"). // leading dot is stripped
//		WithSameSite(attributes.SameSiteLax).
//		WithSecure(true).
//		WithHTTPOnly(true).
//		WithMaxAge(10 * time.Hour)
type Attributes struct {
	path        *string
	domain      *string
	secure      *bool
	httpOnly    *bool
	partitioned *bool
	sameSite    SameSite
	maxAge      *time.Duration
	expires     *time.Time
	permanent   bool
}

// New returns an Attributes with every field absent.
func New() Attributes {
	return Attributes{}
}

// Default returns the safe-default set used when a cookie type declares no
// attributes of its own: Path "/" and HttpOnly true. Everything else is
// absent and falls back to browser defaults.
func Default() Attributes {
	return New().WithPath("/").WithHTTPOnly(true)
}

// WithPath sets the Path attribute.
func (a Attributes) WithPath(path string) Attributes {
	a.path = &path
	return a
}

// WithDomain sets the Domain attribute. Leading dots are stripped; browsers
// ignore them and they break (name, path, domain) identity comparisons.
func (a Attributes) WithDomain(domain string) Attributes {
	domain = strings.TrimLeft(domain, ".")
	a.domain = &domain
	return a
}

// WithSecure sets the Secure flag.
func (a Attributes) WithSecure(secure bool) Attributes {
	a.secure = &secure
	return a
}

// WithHTTPOnly sets the HttpOnly flag.
func (a Attributes) WithHTTPOnly(httpOnly bool) Attributes {
	a.httpOnly = &httpOnly
	return a
}

// WithPartitioned sets the Partitioned flag.
func (a Attributes) WithPartitioned(partitioned bool) Attributes {
	a.partitioned = &partitioned
	return a
}

// WithSameSite sets the SameSite policy.
func (a Attributes) WithSameSite(sameSite SameSite) Attributes {
	a.sameSite = sameSite
	return a
}

// WithMaxAge sets the Max-Age attribute.
func (a Attributes) WithMaxAge(maxAge time.Duration) Attributes {
	a.maxAge = &maxAge
	return a
}

// WithExpires sets the Expires attribute.
func (a Attributes) WithExpires(expires time.Time) Attributes {
	a.expires = &expires
	return a
}

// WithPermanent marks the cookie permanent. A permanent cookie gets a
// Max-Age of PermanentMaxAge and a matching Expires computed at insertion
// time, superseding any explicit Max-Age or Expires on the same set.
func (a Attributes) WithPermanent(permanent bool) Attributes {
	a.permanent = permanent
	return a
}

// Path returns the Path attribute, if set.
func (a Attributes) Path() (string, bool) {
	if a.path == nil {
		return "", false
	}
	return *a.path, true
}

// Domain returns the Domain attribute, if set.
func (a Attributes) Domain() (string, bool) {
	if a.domain == nil {
		return "", false
	}
	return *a.domain, true
}

// Secure returns the Secure flag, if set.
func (a Attributes) Secure() (bool, bool) {
	if a.secure == nil {
		return false, false
	}
	return *a.secure, true
}

// HTTPOnly returns the HttpOnly flag, if set.
func (a Attributes) HTTPOnly() (bool, bool) {
	if a.httpOnly == nil {
		return false, false
	}
	return *a.httpOnly, true
}

// Partitioned returns the Partitioned flag, if set.
func (a Attributes) Partitioned() (bool, bool) {
	if a.partitioned == nil {
		return false, false
	}
	return *a.partitioned, true
}

// SameSite returns the SameSite policy. SameSiteUnset means absent.
func (a Attributes) SameSite() SameSite {
	return a.sameSite
}

// MaxAge returns the Max-Age attribute, if set.
func (a Attributes) MaxAge() (time.Duration, bool) {
	if a.maxAge == nil {
		return 0, false
	}
	return *a.maxAge, true
}

// Expires returns the Expires attribute, if set.
func (a Attributes) Expires() (time.Time, bool) {
	if a.expires == nil {
		return time.Time{}, false
	}
	return *a.expires, true
}

// Permanent reports whether the permanent flag is set.
func (a Attributes) Permanent() bool {
	return a.permanent
}
