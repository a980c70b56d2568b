/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package form

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEscape is wrapped by every EscapeError.
	ErrMalformedEscape = errors.New("malformed percent escape")
	// ErrUnknownCharset is returned when a charset label names no known
	// encoding.
	ErrUnknownCharset = errors.New("unknown charset")
)

// EscapeError reports a '%' that is not followed by two hex digits.
type EscapeError struct {
	// Offset is the position of the '%' within the decoded text.
	Offset int
	// Escape holds the offending bytes, the '%' included.
	Escape string
}

// Error returns the string representation of the escape error.
func (e *EscapeError) Error() string {
	return fmt.Sprintf("form decode error at offset %d: invalid escape %q", e.Offset, e.Escape)
}

// Unwrap returns ErrMalformedEscape.
func (e *EscapeError) Unwrap() error {
	return ErrMalformedEscape
}
