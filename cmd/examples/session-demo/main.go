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

package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cookiebox-project/cookiebox-go/pkg/attributes"
	"github.com/cookiebox-project/cookiebox-go/pkg/cookie"
	"github.com/cookiebox-project/cookiebox-go/pkg/processor"
	"github.com/cookiebox-project/cookiebox-go/pkg/server"
	"github.com/cookiebox-project/cookiebox-go/pkg/storage"
)

// Session is the payload stored in the encrypted session cookie
type Session struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Declare the cookie kinds once, at package level. The session cookie is
// encrypted by the processor; the theme cookie travels in the clear.
var (
	sessionCookie = cookie.Type[Session, Session]{
		Name: "__session",
		Attributes: func() attributes.Attributes {
			return attributes.Default().
				WithSameSite(attributes.SameSiteStrict).
				WithSecure(true)
		},
	}

	themeCookie = cookie.Type[string, string]{
		Name: "theme",
		Attributes: func() attributes.Attributes {
			return attributes.New().WithPath("/").WithPermanent(true)
		},
	}
)

// This example runs a small server with an encrypted session cookie:
//
//	curl -v http://127.0.0.1:8080/login
//	curl -v http://127.0.0.1:8080/whoami --cookie "<Set-Cookie value from login>"
//	curl -v http://127.0.0.1:8080/logout
func main() {
	fmt.Println("=== Typed Cookie Session Example ===")

	// Step 1: configure the processor. The key would normally be loaded
	// from secret storage with processor.KeyFromBytes so sessions survive
	// restarts.
	key := processor.GenerateKey()
	proc := processor.Config{
		Rules: []processor.Rule{{
			Names:     []string{"__session"},
			Algorithm: processor.Encryption,
			Key:       key,
		}},
	}.Processor()
	fmt.Println("Step 1: processor configured (\"__session\" is encrypted)")

	// Step 2: wrap the routes with the cookie middleware
	middleware := server.New(proc)

	mux := http.NewServeMux()
	mux.HandleFunc("/login", login)
	mux.HandleFunc("/whoami", whoami)
	mux.HandleFunc("/logout", logout)

	fmt.Println("Step 2: middleware wired")
	fmt.Println("Listening on 127.0.0.1:8080")

	log.Fatal(http.ListenAndServe("127.0.0.1:8080", middleware.Wrap(mux)))
}

func cookies(r *http.Request) (*storage.Storage, bool) {
	return server.GetStorageFromContext(r.Context())
}

func login(w http.ResponseWriter, r *http.Request) {
	st, ok := cookies(r)
	if !ok {
		http.Error(w, "cookie middleware not active", http.StatusInternalServerError)
		return
	}

	session := Session{
		ID:        uuid.NewString(),
		User:      "ana",
		CreatedAt: time.Now().UTC(),
	}
	if err := sessionCookie.Bind(st).Insert(session); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = themeCookie.Bind(st).Insert("dark")

	fmt.Fprintf(w, "logged in, session %s\n", session.ID)
}

func whoami(w http.ResponseWriter, r *http.Request) {
	st, ok := cookies(r)
	if !ok {
		http.Error(w, "cookie middleware not active", http.StatusInternalServerError)
		return
	}

	session, err := sessionCookie.Bind(st).Get()
	if err != nil {
		// A missing or stale session cookie is an expected state here
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return
	}

	theme := "default"
	if v, err := themeCookie.Bind(st).Get(); err == nil {
		theme = v
	}

	fmt.Fprintf(w, "user=%s session=%s theme=%s\n", session.User, session.ID, theme)
}

func logout(w http.ResponseWriter, r *http.Request) {
	st, ok := cookies(r)
	if !ok {
		http.Error(w, "cookie middleware not active", http.StatusInternalServerError)
		return
	}

	sessionCookie.Bind(st).Remove()
	fmt.Fprintln(w, "logged out")
}
