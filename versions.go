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

// Package cookiebox provides version information for cookiebox-go.
package cookiebox

const (
	// Version is the current version of cookiebox-go
	Version = "1.0.0-dev"

	// CookieRFC is the cookie specification this library targets
	// See: https://www.rfc-editor.org/rfc/rfc6265
	CookieRFC = "6265"

	// WireFormatVersion is the protected-value wire format revision.
	// Signed values are "<base64url mac>.<value>"; encrypted values are
	// base64url(nonce || ciphertext). A bump here means previously issued
	// cookies stop verifying.
	WireFormatVersion = "1"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	CookieboxVersion  string
	CookieRFC         string
	WireFormatVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		CookieboxVersion:  Version,
		CookieRFC:         CookieRFC,
		WireFormatVersion: WireFormatVersion,
	}
}
