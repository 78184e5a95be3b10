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

import "github.com/cookiebox-project/cookiebox-go/pkg/attributes"

// Storage holds the two per-request cookie collections: cookies parsed from
// the request's Cookie header and cookies queued for the response.
//
// One Storage exists per request. It is created by the middleware before the
// handler runs, shared by pointer with every typed cookie handle built for
// that request, drained once when the response is emitted, then discarded.
// It is not safe for concurrent use; request handling is sequential.
type Storage struct {
	request  map[string][]string
	response *responseSet
}

// New creates an empty Storage.
func New() *Storage {
	return &Storage{
		request:  make(map[string][]string),
		response: newResponseSet(),
	}
}

// Append adds one inbound cookie. The inbound collection is a multi-map:
// duplicates under the same name are kept in arrival order.
func (s *Storage) Append(name, value string) {
	s.request[name] = append(s.request[name], value)
}

// Get returns the first inbound value for name.
func (s *Storage) Get(name string) (string, bool) {
	values, ok := s.request[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// GetAll returns every inbound value for name, in arrival order.
func (s *Storage) GetAll(name string) ([]string, bool) {
	values, ok := s.request[name]
	if !ok || len(values) == 0 {
		return nil, false
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, true
}

// Insert queues an outbound cookie. The outbound collection is keyed by
// (name, path, domain): a later insert with the same key replaces the
// earlier entry in place, otherwise the entry is appended.
func (s *Storage) Insert(cookie ResponseCookie) {
	s.response.insert(cookie)
}

// Remove queues a removal sentinel for (name, attrs): an entry with an empty
// value and an Expires at the Unix epoch, instructing the browser to delete
// the cookie. It replaces any pending entry with the same key.
func (s *Storage) Remove(name string, attrs attributes.Attributes) {
	s.response.insert(NewRemovalCookie(name, attrs))
}

// Discard erases whatever outbound entry occupies the (name, path, domain)
// key, insert or removal sentinel alike. Unlike Remove, nothing is sent to
// the browser. Discarding an absent key is a no-op.
func (s *Storage) Discard(name string, attrs attributes.Attributes) {
	s.response.discard(idFor(name, attrs))
}

// Drain takes and clears the outbound collection, preserving insertion
// order. The middleware calls it exactly once per request.
func (s *Storage) Drain() []ResponseCookie {
	return s.response.drain()
}

// responseSet is the outbound collection: a SetID-keyed map with a stable
// side order so drained entries come out in first-insertion order.
type responseSet struct {
	order   []SetID
	entries map[SetID]ResponseCookie
}

func newResponseSet() *responseSet {
	return &responseSet{entries: make(map[SetID]ResponseCookie)}
}

func (r *responseSet) insert(cookie ResponseCookie) {
	id := cookie.ID()
	if _, ok := r.entries[id]; !ok {
		r.order = append(r.order, id)
	}
	r.entries[id] = cookie
}

func (r *responseSet) discard(id SetID) {
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *responseSet) drain() []ResponseCookie {
	out := make([]ResponseCookie, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	r.order = nil
	r.entries = make(map[SetID]ResponseCookie)
	return out
}
