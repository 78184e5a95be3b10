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

package storage

import (
	"time"

	"github.com/cookiebox-project/cookiebox-go/pkg/attributes"
)

// RequestCookie is one inbound (name, value) pair, after the protection
// step has decoded and verified it.
type RequestCookie struct {
	Name  string
	Value string
}

// SetID identifies an outbound cookie. Browsers treat cookies with the same
// name but different Path or Domain as distinct, so replacement in the
// outbound collection is keyed by the full triple, not the name alone.
type SetID struct {
	Name   string
	Path   string
	Domain string
}

// ResponseCookie is one outbound Set-Cookie entry with its attributes fully
// resolved. Permanent lifetimes and the SameSite=None Secure rule are
// applied when the entry is constructed, so the struct renders as-is.
type ResponseCookie struct {
	Name        string
	Value       string
	Path        string
	Domain      string
	Secure      bool
	HTTPOnly    bool
	Partitioned bool
	SameSite    attributes.SameSite
	MaxAge      *time.Duration
	Expires     *time.Time

	// Removal marks a sentinel entry that deletes the cookie in the
	// browser: empty value, Expires at the Unix epoch.
	Removal bool
}

// NewResponseCookie builds an outbound entry from a name, a serialized
// value, and a resolved attribute set.
//
// Lifetime resolution happens here, at insertion time: a permanent set
// yields MaxAge = attributes.PermanentMaxAge and a matching Expires,
// superseding explicit Max-Age/Expires on the same set. A SameSite=None set
// turns Secure on unless the set explicitly says Secure=false.
func NewResponseCookie(name, value string, attrs attributes.Attributes) ResponseCookie {
	c := ResponseCookie{
		Name:     name,
		Value:    value,
		SameSite: attrs.SameSite(),
	}
	c.Path, _ = attrs.Path()
	c.Domain, _ = attrs.Domain()

	if attrs.Permanent() {
		maxAge := attributes.PermanentMaxAge
		expires := time.Now().Add(maxAge)
		c.MaxAge = &maxAge
		c.Expires = &expires
	} else {
		if maxAge, ok := attrs.MaxAge(); ok {
			c.MaxAge = &maxAge
		}
		if expires, ok := attrs.Expires(); ok {
			c.Expires = &expires
		}
	}

	secure, explicit := attrs.Secure()
	switch {
	case explicit:
		c.Secure = secure
	case attrs.SameSite() == attributes.SameSiteNone:
		c.Secure = true
	}
	c.HTTPOnly, _ = attrs.HTTPOnly()
	c.Partitioned, _ = attrs.Partitioned()

	return c
}

// NewRemovalCookie builds a removal sentinel for name: empty value, Expires
// at the Unix epoch. Only Path and Domain carry over from attrs, since they
// take part in the browser's identity match; flags and lifetimes on a
// deleted cookie are meaningless.
func NewRemovalCookie(name string, attrs attributes.Attributes) ResponseCookie {
	epoch := time.Unix(0, 0).UTC()
	c := ResponseCookie{
		Name:    name,
		Expires: &epoch,
		Removal: true,
	}
	c.Path, _ = attrs.Path()
	c.Domain, _ = attrs.Domain()
	return c
}

// ID returns the (name, path, domain) identity of the entry.
func (c ResponseCookie) ID() SetID {
	return SetID{Name: c.Name, Path: c.Path, Domain: c.Domain}
}

// idFor computes the outbound identity an entry built from attrs would get.
func idFor(name string, attrs attributes.Attributes) SetID {
	id := SetID{Name: name}
	id.Path, _ = attrs.Path()
	id.Domain, _ = attrs.Domain()
	return id
}
