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

package cookie

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/cookiebox-project/cookiebox-go/pkg/attributes"
	"github.com/cookiebox-project/cookiebox-go/pkg/storage"
)

// ReadType declares a read-only cookie identity: a wire name bound to the
// type G its values deserialize into. Declare one per cookie kind, once,
// at package level.
//
//	var ThemeCookie = cookie.ReadType[string]{Name: "theme"}
type ReadType[G any] struct {
	// Name is the cookie's wire name. Case- and byte-sensitive.
	Name string
}

// Bind builds a read handle over the request's storage.
func (t ReadType[G]) Bind(s *storage.Storage) Reader[G] {
	return Reader[G]{name: t.Name, storage: s}
}

// WriteType declares a write-only cookie identity: a wire name bound to the
// type I it serializes from, with optional per-type behavior overrides.
type WriteType[I any] struct {
	// Name is the cookie's wire name.
	Name string
	// Serialize overrides the default JSON serialization, when set.
	Serialize func(I) ([]byte, error)
	// Attributes supplies the type's default attribute set, when set.
	// Otherwise attributes.Default() applies.
	Attributes func() attributes.Attributes
}

// Bind builds a write handle over the request's storage.
func (t WriteType[I]) Bind(s *storage.Storage) Writer[I] {
	return Writer[I]{
		name:       t.Name,
		serialize:  t.Serialize,
		attributes: t.Attributes,
		storage:    s,
	}
}

// Type declares a cookie identity readable as G and writable from I. Most
// cookies use the same type for both:
//
//	var SessionCookie = cookie.Type[Session, Session]{
//		Name: "__session",
//		Attributes: func() attributes.Attributes {
//			return attributes.Default().WithSameSite(attributes.SameSiteStrict)
//		},
//	}
//
// A kind that should only ever be read is declared as a ReadType, one that
// is only written as a WriteType; the missing capability then does not
// exist on the handle at all.
type Type[G, I any] struct {
	Name       string
	Serialize  func(I) ([]byte, error)
	Attributes func() attributes.Attributes
}

// Bind builds a combined handle over the request's storage.
func (t Type[G, I]) Bind(s *storage.Storage) Cookie[G, I] {
	return Cookie[G, I]{
		Reader: ReadType[G]{Name: t.Name}.Bind(s),
		Writer: WriteType[I]{
			Name:       t.Name,
			Serialize:  t.Serialize,
			Attributes: t.Attributes,
		}.Bind(s),
	}
}

// Reader reads a declared cookie's inbound values as G.
type Reader[G any] struct {
	name    string
	storage *storage.Storage
}

// Get deserializes the first inbound value for the cookie's name. It
// returns *NotFoundError when the request carried no such cookie and
// *DeserializationError when the value does not parse as G.
func (r Reader[G]) Get() (G, error) {
	var zero G
	raw, ok := r.storage.Get(r.name)
	if !ok {
		return zero, &NotFoundError{Name: r.name}
	}
	return r.decode(raw)
}

// GetAll deserializes every inbound value for the cookie's name, in arrival
// order. It fails the same two ways as Get, and fails fast: the first value
// that does not parse aborts with no partial results.
func (r Reader[G]) GetAll() ([]G, error) {
	raws, ok := r.storage.GetAll(r.name)
	if !ok {
		return nil, &NotFoundError{Name: r.name}
	}
	out := make([]G, 0, len(raws))
	for _, raw := range raws {
		v, err := r.decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r Reader[G]) decode(raw string) (G, error) {
	var v G
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		var zero G
		return zero, &DeserializationError{
			Name:   r.name,
			Value:  raw,
			Target: reflect.TypeOf(&v).Elem().String(),
			Err:    err,
		}
	}
	return v, nil
}

// Writer queues outbound state for a declared cookie.
type Writer[I any] struct {
	name       string
	serialize  func(I) ([]byte, error)
	attributes func() attributes.Attributes
	override   *attributes.Attributes
	storage    *storage.Storage
}

// With returns a Writer whose operations use attrs instead of the type's
// default attributes. The override replaces the default wholesale; fields
// are not merged.
func (w Writer[I]) With(attrs attributes.Attributes) Writer[I] {
	w.override = &attrs
	return w
}

// Insert serializes value and queues it for the response under the
// resolved attribute set. Inserting again for the same (name, path, domain)
// replaces the pending entry.
func (w Writer[I]) Insert(value I) error {
	payload, err := w.encode(value)
	if err != nil {
		return fmt.Errorf("serializing cookie %q: %w", w.name, err)
	}
	w.storage.Insert(storage.NewResponseCookie(w.name, string(payload), w.resolveAttributes()))
	return nil
}

// Remove queues a removal sentinel telling the browser to delete the
// cookie. It replaces any pending insert for the same identity.
func (w Writer[I]) Remove() {
	w.storage.Remove(w.name, w.resolveAttributes())
}

// Discard retracts whatever entry is pending for the cookie's identity
// without telling the browser anything.
func (w Writer[I]) Discard() {
	w.storage.Discard(w.name, w.resolveAttributes())
}

func (w Writer[I]) encode(value I) ([]byte, error) {
	if w.serialize != nil {
		return w.serialize(value)
	}
	return json.Marshal(value)
}

func (w Writer[I]) resolveAttributes() attributes.Attributes {
	if w.override != nil {
		return *w.override
	}
	if w.attributes != nil {
		return w.attributes()
	}
	return attributes.Default()
}

// Cookie combines the read and write capabilities of one identity.
type Cookie[G, I any] struct {
	Reader[G]
	Writer[I]
}
