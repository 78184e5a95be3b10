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

package processor

import "fmt"

// ErrorKind classifies why an incoming cookie failed the protection step.
type ErrorKind int

const (
	// KindOther covers failures that fit neither category below.
	KindOther ErrorKind = iota
	// KindCrypto means decryption failed: ciphertext rejected by every
	// configured key.
	KindCrypto
	// KindDecoding means the value's encoding or signature was invalid:
	// bad base64, missing MAC separator, or a MAC that matched no key.
	KindDecoding
)

// String returns a short label for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindCrypto:
		return "crypto"
	case KindDecoding:
		return "decoding"
	default:
		return "other"
	}
}

// ProtectionError reports that an incoming cookie could not be verified or
// decrypted. The middleware rejects the whole request when it sees one.
type ProtectionError struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Cookie is the (decoded) name of the offending cookie.
	Cookie string
	// Err is the underlying cause, when one exists.
	Err error
}

func (e *ProtectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cookie %q failed %s check: %v", e.Cookie, e.Kind, e.Err)
	}
	return fmt.Sprintf("cookie %q failed %s check", e.Cookie, e.Kind)
}

func (e *ProtectionError) Unwrap() error {
	return e.Err
}

// RenderError reports that an outbound entry could not be formatted into a
// Set-Cookie header value. It is fatal to the response: cookies could not
// be safely attached.
type RenderError struct {
	// Cookie is the name of the entry that failed to render.
	Cookie string
	// Err is the underlying cause.
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering cookie %q: %v", e.Cookie, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
