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

	"github.com/cookiebox-project/cookiebox-go/pkg/attributes"
	"github.com/cookiebox-project/cookiebox-go/pkg/cookie"
	"github.com/cookiebox-project/cookiebox-go/pkg/processor"
	"github.com/cookiebox-project/cookiebox-go/pkg/storage"
)

// Greeting shows a cookie kind with distinct read and write shapes: the
// handler writes a (name, count) pair, the browser-facing value is a
// rendered string.
var greetingCookie = cookie.Type[string, [2]string]{
	Name: "greeting",
	Serialize: func(v [2]string) ([]byte, error) {
		return []byte(fmt.Sprintf("%q", v[0]+", visit "+v[1])), nil
	},
	Attributes: func() attributes.Attributes {
		return attributes.New().
			WithPath("/greet").
			WithSameSite(attributes.SameSiteLax).
			WithHTTPOnly(false)
	},
}

// This example walks through the typed handle surface against a bare
// storage, without running a server.
func main() {
	fmt.Println("=== Typed Cookie Handles Example ===")

	// Step 1: a per-request storage, normally created by the middleware
	st := storage.New()
	st.Append("greeting", `"hello, visit 3"`)
	fmt.Println("Step 1: storage populated with one inbound cookie")

	// Step 2: read through the typed handle
	handle := greetingCookie.Bind(st)
	value, err := handle.Get()
	if err != nil {
		fmt.Printf("  get failed: %v\n", err)
		return
	}
	fmt.Printf("Step 2: read back: %s\n", value)

	// Step 3: write with the type's defaults, then override at call site
	if err := handle.Insert([2]string{"hello", "4"}); err != nil {
		fmt.Printf("  insert failed: %v\n", err)
		return
	}
	override := handle.Writer.With(attributes.New().WithPath("/elsewhere"))
	if err := override.Insert([2]string{"hi", "1"}); err != nil {
		fmt.Printf("  insert failed: %v\n", err)
		return
	}
	fmt.Println("Step 3: two pending entries (distinct paths)")

	// Step 4: retract the override again before it is ever sent
	override.Discard()
	fmt.Println("Step 4: override discarded")

	// Step 5: render what the response would carry
	values, err := processor.Config{}.Processor().RenderOutgoing(st.Drain())
	if err != nil {
		fmt.Printf("  render failed: %v\n", err)
		return
	}
	fmt.Println("Step 5: Set-Cookie headers:")
	for _, v := range values {
		fmt.Printf("  %s\n", v)
	}
}
