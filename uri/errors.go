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

package uri

import (
	"errors"
	"fmt"
)

var (
	// ErrNoScheme is reported when the input does not start with
	// `ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) ":"`. No component is
	// extracted from such an input.
	ErrNoScheme = errors.New("no scheme found in URI")
	// ErrInvalidIPLiteral is reported when a host starts with "[" but is not
	// an IPv6 address followed by "]".
	ErrInvalidIPLiteral = errors.New("invalid IP literal")
	// ErrTrailingInput is reported when the parser stops on a byte that no
	// component accepts.
	ErrTrailingInput = errors.New("unexpected character")
	// ErrUnsupported is wrapped by every UnsupportedError.
	ErrUnsupported = errors.New("unsupported URI production")
)

// ParseError describes where and why the structural parser stopped. It wraps
// one of the package sentinels.
type ParseError struct {
	Offset int
	Err    error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error at offset %d: %s", e.Offset, e.Err)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnsupportedError is reported when the input reaches a grammar production
// this parser does not implement yet. The components parsed before Offset are
// still available; nothing after it is.
type UnsupportedError struct {
	// Production is the RFC 3986 rule name, e.g. "reg-name".
	Production string
	Offset     int
}

// Error returns the string representation of the unsupported production.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("URI parse error at offset %d: %s is not supported", e.Offset, e.Production)
}

// Unwrap returns ErrUnsupported.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
