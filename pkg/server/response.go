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

package server

import (
	"bytes"
	"net/http"
)

// bufferedResponse holds the handler's status, headers, and body in memory
// until the middleware knows the outbound cookies rendered cleanly. Nothing
// reaches the client before flush, so a render failure can still replace
// the whole response.
type bufferedResponse struct {
	dst    http.ResponseWriter
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedResponse(dst http.ResponseWriter) *bufferedResponse {
	return &bufferedResponse{
		dst:    dst,
		header: make(http.Header),
	}
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(statusCode int) {
	if b.status == 0 {
		b.status = statusCode
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// flush replays the buffered response onto the real writer.
func (b *bufferedResponse) flush() {
	dst := b.dst.Header()
	for key, values := range b.header {
		dst[key] = values
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.dst.WriteHeader(b.status)
	if b.body.Len() > 0 {
		_, _ = b.dst.Write(b.body.Bytes())
	}
}
