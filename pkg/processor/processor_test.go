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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookiebox-project/cookiebox-go/pkg/attributes"
	"github.com/cookiebox-project/cookiebox-go/pkg/storage"
)

func signingProcessor(t *testing.T, names ...string) (*Processor, Key) {
	t.Helper()
	key := GenerateKey()
	p := Config{Rules: []Rule{{Names: names, Algorithm: Signing, Key: key}}}.Processor()
	return p, key
}

func encryptionProcessor(t *testing.T, names ...string) (*Processor, Key) {
	t.Helper()
	key := GenerateKey()
	p := Config{Rules: []Rule{{Names: names, Algorithm: Encryption, Key: key}}}.Processor()
	return p, key
}

// renderOne renders a single plain insert and returns the header value
func renderOne(t *testing.T, p *Processor, name, value string, attrs attributes.Attributes) string {
	t.Helper()
	values, err := p.RenderOutgoing([]storage.ResponseCookie{
		storage.NewResponseCookie(name, value, attrs),
	})
	require.NoError(t, err)
	require.Len(t, values, 1)
	return values[0]
}

// Test an unconfigured cookie passes through with only percent-decoding
func TestProcessIncoming_Unprotected(t *testing.T) {
	p := Config{}.Processor()

	c, err := p.ProcessIncoming("plain", "value")
	require.NoError(t, err)
	assert.Equal(t, storage.RequestCookie{Name: "plain", Value: "value"}, c)

	c, err = p.ProcessIncoming("Type%20A", "%22id%22")
	require.NoError(t, err)
	assert.Equal(t, storage.RequestCookie{Name: "Type A", Value: `"id"`}, c)
}

// Test sign then verify round-trips the value
func TestSigning_RoundTrip(t *testing.T) {
	p, _ := signingProcessor(t, "signed")

	wire := sign("signed", `{"user":"ana"}`, keyOf(t, p, "signed"))
	c, err := p.ProcessIncoming("signed", wire)
	require.NoError(t, err)
	assert.Equal(t, `{"user":"ana"}`, c.Value)
}

// keyOf digs the primary key back out of the compiled rules
func keyOf(t *testing.T, p *Processor, name string) Key {
	t.Helper()
	rule, ok := p.rules[name]
	require.True(t, ok)
	return rule.keys[0]
}

// Test a tampered signed value is rejected as a decoding failure
func TestSigning_TamperDetected(t *testing.T) {
	p, key := signingProcessor(t, "signed")

	wire := sign("signed", "original", key)
	tampered := wire[:len(wire)-len("original")] + "replaced"

	_, err := p.ProcessIncoming("signed", tampered)
	var perr *ProtectionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindDecoding, perr.Kind)
	assert.Equal(t, "signed", perr.Cookie)
}

// Test a signed value without a tag separator is a decoding failure
func TestSigning_MissingSeparator(t *testing.T) {
	p, _ := signingProcessor(t, "signed")

	_, err := p.ProcessIncoming("signed", "no-separator-here")
	var perr *ProtectionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindDecoding, perr.Kind)
}

// Test the MAC binds the cookie name: a value signed for one name does not
// verify under another
func TestSigning_NameBound(t *testing.T) {
	key := GenerateKey()
	p := Config{Rules: []Rule{{Names: []string{"a", "b"}, Algorithm: Signing, Key: key}}}.Processor()

	wire := sign("a", "value", key)
	_, err := p.ProcessIncoming("b", wire)
	var perr *ProtectionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindDecoding, perr.Kind)
}

// Test a fallback key still verifies cookies signed by the old primary
func TestSigning_FallbackRotation(t *testing.T) {
	oldKey := GenerateKey()
	newKey := GenerateKey()
	p := Config{Rules: []Rule{{
		Names:     []string{"signed"},
		Algorithm: Signing,
		Key:       newKey,
		Fallbacks: []Key{oldKey},
	}}}.Processor()

	wire := sign("signed", "legacy", oldKey)
	c, err := p.ProcessIncoming("signed", wire)
	require.NoError(t, err)
	assert.Equal(t, "legacy", c.Value)
}

// Test encrypt then decrypt round-trips the value
func TestEncryption_RoundTrip(t *testing.T) {
	p, key := encryptionProcessor(t, "secret")

	wire := encrypt("secret", `{"id":42}`, key)
	c, err := p.ProcessIncoming("secret", wire)
	require.NoError(t, err)
	assert.Equal(t, `{"id":42}`, c.Value)
}

// Test ciphertext under a different key fails as a crypto failure
func TestEncryption_WrongKey(t *testing.T) {
	p, _ := encryptionProcessor(t, "secret")
	other := GenerateKey()

	wire := encrypt("secret", "value", other)
	_, err := p.ProcessIncoming("secret", wire)
	var perr *ProtectionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindCrypto, perr.Kind)
}

// Test invalid base64 in an encrypted value is a decoding failure
func TestEncryption_BadEncoding(t *testing.T) {
	p, _ := encryptionProcessor(t, "secret")

	_, err := p.ProcessIncoming("secret", "!!!not-base64!!!")
	var perr *ProtectionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindDecoding, perr.Kind)
}

// Test a sealed value shorter than the nonce is a decoding failure
func TestEncryption_TruncatedValue(t *testing.T) {
	p, _ := encryptionProcessor(t, "secret")

	_, err := p.ProcessIncoming("secret", "AAAA")
	var perr *ProtectionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindDecoding, perr.Kind)
}

// Test encryption fallback keys decrypt what the old primary sealed
func TestEncryption_FallbackRotation(t *testing.T) {
	oldKey := GenerateKey()
	newKey := GenerateKey()
	p := Config{Rules: []Rule{{
		Names:     []string{"secret"},
		Algorithm: Encryption,
		Key:       newKey,
		Fallbacks: []Key{oldKey},
	}}}.Processor()

	wire := encrypt("secret", "legacy", oldKey)
	c, err := p.ProcessIncoming("secret", wire)
	require.NoError(t, err)
	assert.Equal(t, "legacy", c.Value)
}

// Test render emits attributes in the fixed documented order
func TestRenderOutgoing_AttributeOrder(t *testing.T) {
	p := Config{}.Processor()
	expires := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	attrs := attributes.New().
		WithPath("/some-path").
		WithDomain("example.com").
		WithMaxAge(10 * time.Hour).
		WithExpires(expires).
		WithSecure(true).
		WithHTTPOnly(true).
		WithSameSite(attributes.SameSiteLax).
		WithPartitioned(true)

	value := renderOne(t, p, "c", "v", attrs)
	assert.Equal(t,
		"c=v; Path=/some-path; Domain=example.com; Max-Age=36000; "+
			"Expires=Mon, 01 Jan 2024 00:00:00 GMT; Secure; HttpOnly; SameSite=Lax; Partitioned",
		value)
}

// Test render percent-encodes names and values
func TestRenderOutgoing_PercentEncoding(t *testing.T) {
	p := Config{}.Processor()

	value := renderOne(t, p, "Type A", `"id"`, attributes.New().WithHTTPOnly(true))
	assert.Equal(t, "Type%20A=%22id%22; HttpOnly", value)
}

// Test a removal sentinel renders with empty value and epoch Expires
func TestRenderOutgoing_Removal(t *testing.T) {
	p := Config{}.Processor()

	values, err := p.RenderOutgoing([]storage.ResponseCookie{
		storage.NewRemovalCookie("session", attributes.New()),
	})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "session=; Expires=Thu, 01 Jan 1970 00:00:00 GMT", values[0])
}

// Test a removal sentinel for a protected cookie skips protection
func TestRenderOutgoing_RemovalSkipsProtection(t *testing.T) {
	p, _ := signingProcessor(t, "signed")

	values, err := p.RenderOutgoing([]storage.ResponseCookie{
		storage.NewRemovalCookie("signed", attributes.New()),
	})
	require.NoError(t, err)
	assert.Equal(t, "signed=; Expires=Thu, 01 Jan 1970 00:00:00 GMT", values[0])
}

// Test rendered signed output feeds back through ProcessIncoming
func TestRender_ProcessIncoming_RoundTrip(t *testing.T) {
	p, _ := signingProcessor(t, "signed")

	header := renderOne(t, p, "signed", `{"n":1}`, attributes.New())
	nameValue := strings.SplitN(header, ";", 2)[0]
	name, wire, found := strings.Cut(nameValue, "=")
	require.True(t, found)

	c, err := p.ProcessIncoming(name, wire)
	require.NoError(t, err)
	assert.Equal(t, "signed", c.Name)
	assert.Equal(t, `{"n":1}`, c.Value)
}

// Test an empty cookie name fails rendering
func TestRenderOutgoing_EmptyName(t *testing.T) {
	p := Config{}.Processor()

	_, err := p.RenderOutgoing([]storage.ResponseCookie{
		storage.NewResponseCookie("", "v", attributes.New()),
	})
	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
}

// Test percent encode and decode are inverses over awkward input
func TestPercentEncoding_RoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"has space",
		`quoted "value"`,
		"semi;colon, comma=eq",
		"100%",
		"unicode: héllo",
		"",
	}
	for _, in := range inputs {
		assert.Equal(t, in, percentDecode(percentEncode(in)), "input %q", in)
	}
}

// Test decode leaves stray percent signs alone
func TestPercentDecode_Lenient(t *testing.T) {
	assert.Equal(t, "100%", percentDecode("100%"))
	assert.Equal(t, "%zz", percentDecode("%zz"))
	assert.Equal(t, "a%2", percentDecode("a%2"))
}

// Test KeyFromBytes round-trips and rejects wrong sizes
func TestKeyFromBytes(t *testing.T) {
	original := GenerateKey()

	restored, err := KeyFromBytes(original.Bytes())
	require.NoError(t, err)
	assert.Equal(t, original.Bytes(), restored.Bytes())

	_, err = KeyFromBytes(make([]byte, 16))
	assert.Error(t, err)
}

// Test Key's String never leaks material
func TestKey_StringRedacted(t *testing.T) {
	key := GenerateKey()
	assert.NotContains(t, key.String(), string(key.Bytes()[:8]))
	assert.Equal(t, "processor.Key(redacted)", key.String())
}

// Test ProtectionError supports errors.As through wrapping
func TestProtectionError_Unwraps(t *testing.T) {
	inner := errors.New("boom")
	err := &ProtectionError{Kind: KindCrypto, Cookie: "c", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), `"c"`)
	assert.Contains(t, err.Error(), "crypto")
}
