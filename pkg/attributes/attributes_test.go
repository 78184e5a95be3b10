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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Test New yields an all-absent set
func TestNew_AllAbsent(t *testing.T) {
	a := New()

	_, ok := a.Path()
	assert.False(t, ok)
	_, ok = a.Domain()
	assert.False(t, ok)
	_, ok = a.Secure()
	assert.False(t, ok)
	_, ok = a.HTTPOnly()
	assert.False(t, ok)
	_, ok = a.Partitioned()
	assert.False(t, ok)
	_, ok = a.MaxAge()
	assert.False(t, ok)
	_, ok = a.Expires()
	assert.False(t, ok)
	assert.Equal(t, SameSiteUnset, a.SameSite())
	assert.False(t, a.Permanent())
}

// Test Default fixes Path "/" and HttpOnly true, nothing else
func TestDefault_SafeDefaults(t *testing.T) {
	a := Default()

	path, ok := a.Path()
	assert.True(t, ok)
	assert.Equal(t, "/", path)

	httpOnly, ok := a.HTTPOnly()
	assert.True(t, ok)
	assert.True(t, httpOnly)

	_, ok = a.Secure()
	assert.False(t, ok)
	_, ok = a.Domain()
	assert.False(t, ok)
	assert.Equal(t, SameSiteUnset, a.SameSite())
}

// Test builder methods set their field and only their field
func TestBuilder_SetsFields(t *testing.T) {
	expires := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	a := New().
		WithPath("/some-path").
		WithDomain("example.com").
		WithSecure(true).
		WithHTTPOnly(true).
		WithPartitioned(true).
		WithSameSite(SameSiteLax).
		WithMaxAge(10 * time.Hour).
		WithExpires(expires).
		WithPermanent(true)

	path, _ := a.Path()
	assert.Equal(t, "/some-path", path)
	domain, _ := a.Domain()
	assert.Equal(t, "example.com", domain)
	secure, _ := a.Secure()
	assert.True(t, secure)
	httpOnly, _ := a.HTTPOnly()
	assert.True(t, httpOnly)
	partitioned, _ := a.Partitioned()
	assert.True(t, partitioned)
	assert.Equal(t, SameSiteLax, a.SameSite())
	maxAge, _ := a.MaxAge()
	assert.Equal(t, 10*time.Hour, maxAge)
	got, _ := a.Expires()
	assert.Equal(t, expires, got)
	assert.True(t, a.Permanent())
}

// Test With* methods return copies and leave the receiver untouched
func TestBuilder_CopyOnWrite(t *testing.T) {
	base := New().WithPath("/base")
	derived := base.WithPath("/derived").WithSecure(true)

	basePath, _ := base.Path()
	assert.Equal(t, "/base", basePath)
	_, ok := base.Secure()
	assert.False(t, ok)

	derivedPath, _ := derived.Path()
	assert.Equal(t, "/derived", derivedPath)
}

// Test WithDomain strips leading dots
func TestWithDomain_StripsLeadingDots(t *testing.T) {
	a := New().WithDomain("..example.com")
	domain, ok := a.Domain()
	assert.True(t, ok)
	assert.Equal(t, "example.com", domain)

	a = New().WithDomain(".example.com")
	domain, _ = a.Domain()
	assert.Equal(t, "example.com", domain)

	a = New().WithDomain("example.com")
	domain, _ = a.Domain()
	assert.Equal(t, "example.com", domain)
}

// Test SameSite renders the expected header tokens
func TestSameSite_String(t *testing.T) {
	assert.Equal(t, "Strict", SameSiteStrict.String())
	assert.Equal(t, "Lax", SameSiteLax.String())
	assert.Equal(t, "None", SameSiteNone.String())
	assert.Equal(t, "", SameSiteUnset.String())
}

// Test the permanent lifetime constant is 20 years
func TestPermanentMaxAge(t *testing.T) {
	assert.Equal(t, 20*365*24*time.Hour, PermanentMaxAge)
}
