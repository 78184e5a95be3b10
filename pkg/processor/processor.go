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
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/cookiebox-project/cookiebox-go/pkg/storage"
)

// Algorithm selects how a crypto rule protects its cookies.
type Algorithm int

const (
	// Signing appends an HMAC-SHA256 tag: tampering is detected, the value
	// stays readable by the client.
	Signing Algorithm = iota
	// Encryption seals the value with XChaCha20-Poly1305: the client can
	// neither read nor tamper with it.
	Encryption
)

// Rule protects a set of cookie names with one algorithm and key. Fallbacks
// are tried on incoming cookies after the primary key fails, which lets
// keys rotate without invalidating every live session at once; outgoing
// cookies always use the primary key.
type Rule struct {
	Names     []string
	Algorithm Algorithm
	Key       Key
	Fallbacks []Key
}

// Config lists the crypto rules for a Processor. The zero Config is valid:
// every cookie passes through unprotected.
type Config struct {
	Rules []Rule
}

// Processor transforms cookie values between their application form and
// their wire form: percent-encoding for every cookie, plus per-name signing
// or encryption as configured. It is immutable once built and safe to share
// across requests.
type Processor struct {
	rules map[string]compiledRule
}

type compiledRule struct {
	algorithm Algorithm
	keys      []Key // primary first, then fallbacks
}

// Processor compiles the config. A name claimed by several rules belongs to
// the last one listed.
func (c Config) Processor() *Processor {
	p := &Processor{rules: make(map[string]compiledRule)}
	for _, rule := range c.Rules {
		compiled := compiledRule{
			algorithm: rule.Algorithm,
			keys:      append([]Key{rule.Key}, rule.Fallbacks...),
		}
		for _, name := range rule.Names {
			p.rules[name] = compiled
		}
	}
	return p
}

// ProcessIncoming decodes one (name, value) pair taken from the Cookie
// header: percent-decoding first, then verification or decryption when the
// decoded name has a rule. Failures are *ProtectionError.
func (p *Processor) ProcessIncoming(name, value string) (storage.RequestCookie, error) {
	decoded := storage.RequestCookie{
		Name:  percentDecode(name),
		Value: percentDecode(value),
	}

	rule, ok := p.rules[decoded.Name]
	if !ok {
		return decoded, nil
	}

	var err error
	switch rule.algorithm {
	case Signing:
		decoded.Value, err = verify(decoded.Name, decoded.Value, rule.keys)
	case Encryption:
		decoded.Value, err = decrypt(decoded.Name, decoded.Value, rule.keys)
	default:
		err = &ProtectionError{
			Kind:   KindOther,
			Cookie: decoded.Name,
			Err:    fmt.Errorf("unrecognized algorithm %d", rule.algorithm),
		}
	}
	if err != nil {
		return storage.RequestCookie{}, err
	}
	return decoded, nil
}

// RenderOutgoing turns drained outbound entries into Set-Cookie header
// values, one per entry, in order. Entries whose name has a rule get their
// value signed or encrypted with the rule's primary key first; removal
// sentinels carry no value and skip protection. Failures are *RenderError.
func (p *Processor) RenderOutgoing(cookies []storage.ResponseCookie) ([]string, error) {
	values := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		value := cookie.Value
		if rule, ok := p.rules[cookie.Name]; ok && !cookie.Removal {
			switch rule.algorithm {
			case Signing:
				value = sign(cookie.Name, value, rule.keys[0])
			case Encryption:
				value = encrypt(cookie.Name, value, rule.keys[0])
			}
		}
		rendered, err := headerValue(cookie, value)
		if err != nil {
			return nil, &RenderError{Cookie: cookie.Name, Err: err}
		}
		values = append(values, rendered)
	}
	return values, nil
}

// macEncoding carries MAC tags and sealed values; URL-safe and unpadded, so
// the result needs no further cookie escaping.
var macEncoding = base64.RawURLEncoding

// sign prepends an HMAC-SHA256 tag over name and value:
// "<base64url(mac)>.<value>".
func sign(name, value string, key Key) string {
	return macEncoding.EncodeToString(mac(name, value, key)) + "." + value
}

// verify strips and checks the tag that sign added, trying each key in
// order. Format problems are KindDecoding; so is a tag no key accepts.
func verify(name, value string, keys []Key) (string, error) {
	tag, rest, found := strings.Cut(value, ".")
	if !found {
		return "", &ProtectionError{
			Kind:   KindDecoding,
			Cookie: name,
			Err:    fmt.Errorf("signed value has no tag separator"),
		}
	}
	tagBytes, err := macEncoding.DecodeString(tag)
	if err != nil {
		return "", &ProtectionError{Kind: KindDecoding, Cookie: name, Err: err}
	}
	for _, key := range keys {
		if hmac.Equal(tagBytes, mac(name, rest, key)) {
			return rest, nil
		}
	}
	return "", &ProtectionError{
		Kind:   KindDecoding,
		Cookie: name,
		Err:    fmt.Errorf("signature matches no configured key"),
	}
}

func mac(name, value string, key Key) []byte {
	h := hmac.New(sha256.New, key.signingKey())
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(value))
	return h.Sum(nil)
}

// encrypt seals value with XChaCha20-Poly1305, binding the cookie name as
// associated data: "base64url(nonce || ciphertext)".
func encrypt(name, value string, key Key) string {
	aead, err := chacha20poly1305.NewX(key.encryptionKey())
	if err != nil {
		// NewX only rejects wrong key sizes; Key halves are always 32 bytes.
		panic(fmt.Sprintf("processor: building AEAD: %v", err))
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX, chacha20poly1305.NonceSizeX+len(value)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		panic(fmt.Sprintf("processor: reading nonce: %v", err))
	}
	sealed := aead.Seal(nonce, nonce, []byte(value), []byte(name))
	return macEncoding.EncodeToString(sealed)
}

// decrypt opens what encrypt sealed, trying each key in order. Encoding and
// length problems are KindDecoding; a ciphertext every key rejects is
// KindCrypto.
func decrypt(name, value string, keys []Key) (string, error) {
	sealed, err := macEncoding.DecodeString(value)
	if err != nil {
		return "", &ProtectionError{Kind: KindDecoding, Cookie: name, Err: err}
	}
	if len(sealed) < chacha20poly1305.NonceSizeX {
		return "", &ProtectionError{
			Kind:   KindDecoding,
			Cookie: name,
			Err:    fmt.Errorf("sealed value shorter than nonce"),
		}
	}
	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	for _, key := range keys {
		aead, err := chacha20poly1305.NewX(key.encryptionKey())
		if err != nil {
			continue
		}
		if plain, err := aead.Open(nil, nonce, ciphertext, []byte(name)); err == nil {
			return string(plain), nil
		}
	}
	return "", &ProtectionError{
		Kind:   KindCrypto,
		Cookie: name,
		Err:    fmt.Errorf("ciphertext rejected by every configured key"),
	}
}

// headerValue renders one Set-Cookie value. Attribute order is fixed so
// output is byte-stable: Path, Domain, Max-Age, Expires, Secure, HttpOnly,
// SameSite, Partitioned.
func headerValue(cookie storage.ResponseCookie, value string) (string, error) {
	if cookie.Name == "" {
		return "", fmt.Errorf("cookie name is empty")
	}

	var b strings.Builder
	b.WriteString(percentEncode(cookie.Name))
	b.WriteByte('=')
	b.WriteString(percentEncode(value))

	if cookie.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(cookie.Path)
	}
	if cookie.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(cookie.Domain)
	}
	if cookie.MaxAge != nil {
		fmt.Fprintf(&b, "; Max-Age=%d", int64(cookie.MaxAge.Seconds()))
	}
	if cookie.Expires != nil {
		b.WriteString("; Expires=")
		b.WriteString(cookie.Expires.UTC().Format(http.TimeFormat))
	}
	if cookie.Secure {
		b.WriteString("; Secure")
	}
	if cookie.HTTPOnly {
		b.WriteString("; HttpOnly")
	}
	if s := cookie.SameSite.String(); s != "" {
		b.WriteString("; SameSite=")
		b.WriteString(s)
	}
	if cookie.Partitioned {
		b.WriteString("; Partitioned")
	}
	return b.String(), nil
}
