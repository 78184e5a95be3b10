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

import (
	"crypto/rand"
	"fmt"
)

// KeySize is the length of a Key in bytes: a 32-byte signing half followed
// by a 32-byte encryption half.
const KeySize = 64

// Key is the secret material behind a crypto rule. The same Key can back
// signing and encryption rules; each use draws on its own half.
type Key struct {
	bytes [KeySize]byte
}

// GenerateKey returns a Key filled from crypto/rand.
func GenerateKey() Key {
	var k Key
	if _, err := rand.Read(k.bytes[:]); err != nil {
		// crypto/rand never fails on supported platforms; if it does the
		// process has no usable entropy source and cannot issue cookies.
		panic(fmt.Sprintf("processor: reading random key material: %v", err))
	}
	return k
}

// KeyFromBytes builds a Key from exactly KeySize bytes. Use it to load a
// persisted key so cookies survive process restarts.
func KeyFromBytes(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(b))
	}
	copy(k.bytes[:], b)
	return k, nil
}

// Bytes returns a copy of the raw key material.
func (k Key) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, k.bytes[:])
	return out
}

func (k Key) signingKey() []byte {
	return k.bytes[:KeySize/2]
}

func (k Key) encryptionKey() []byte {
	return k.bytes[KeySize/2:]
}

// String never exposes key material.
func (k Key) String() string {
	return "processor.Key(redacted)"
}
