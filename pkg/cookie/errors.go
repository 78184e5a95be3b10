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

import "fmt"

// NotFoundError reports that the request carried no cookie under the
// handle's name. Whether that is a real problem is the handler's call; a
// missing session cookie usually just means "not logged in".
type NotFoundError struct {
	// Name is the cookie name that was looked up.
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cookie %q does not exist", e.Name)
}

// DeserializationError reports that an inbound cookie value was present but
// did not parse into the handle's declared type.
type DeserializationError struct {
	// Name is the cookie name.
	Name string
	// Value is the raw value that failed to parse.
	Value string
	// Target is the name of the type the value was parsed into.
	Target string
	// Err is the decoder's error.
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize %q to type %s", e.Value, e.Target)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
