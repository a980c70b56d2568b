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

// Package uri provides a non-copying view over a URI as defined by RFC 3986.
//
// Parse splits its input into scheme, userinfo, host, port, authority, path,
// query and fragment. Each component is a substring of the input: nothing is
// decoded, normalized or copied.
//
// Key points:
//   - Hosts are IPv4 addresses or bracketed IPv6 addresses. The nine IPv6
//     compression forms are all recognized, including an embedded IPv4 tail.
//   - Registered names, userinfo, percent-encoded path segments and
//     hier-parts without "//" are not supported yet. Reaching one leaves the
//     remaining components empty and is reported by View.Err as an
//     UnsupportedError. Building with the `netview_conformance` tag turns
//     those reports into panics.
//   - A component that is absent and a component that failed to match are
//     both empty; View.Err tells them apart.
package uri

import (
	"encoding/json"
)

// Span is a half-open byte range [Start, End) of a View's input.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span holds no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// In returns the bytes of input covered by the span.
func (s Span) In(input string) string {
	return input[s.Start:s.End]
}

// Spans holds the position of every component of a parsed URI.
type Spans struct {
	Scheme    Span
	Userinfo  Span
	Host      Span
	Port      Span
	Authority Span
	Path      Span
	Query     Span
	Fragment  Span
}

// View is a parsed URI. It keeps a reference to its input and never modifies
// it; all accessors return substrings of it. A View is immutable and may be
// shared between goroutines.
type View struct {
	input string
	spans Spans
	err   error
}

// Parse parses s as a URI. It never fails: components that are absent or
// malformed are left empty, and Err reports why parsing stopped early.
func Parse(s string) *View {
	spans, err := run(s)
	return &View{input: s, spans: spans, err: err}
}

// Err returns nil if the whole input was consumed as a URI. Otherwise it
// returns a *ParseError or an *UnsupportedError describing the first place
// where parsing stopped.
func (v *View) Err() error {
	return v.err
}

// Input returns the string the view was parsed from.
func (v *View) Input() string {
	return v.input
}

// Spans returns the byte ranges of all components.
func (v *View) Spans() Spans {
	return v.spans
}

// Scheme returns the scheme component, without the trailing ':'.
func (v *View) Scheme() string {
	return v.spans.Scheme.In(v.input)
}

// Userinfo returns the userinfo component, without the trailing '@'.
func (v *View) Userinfo() string {
	return v.spans.Userinfo.In(v.input)
}

// Host returns the host component. IPv6 addresses are returned without
// their enclosing brackets.
func (v *View) Host() string {
	return v.spans.Host.In(v.input)
}

// Port returns the port component, without the leading ':'.
func (v *View) Port() string {
	return v.spans.Port.In(v.input)
}

// Authority returns the authority component, without the leading "//".
func (v *View) Authority() string {
	return v.spans.Authority.In(v.input)
}

// Path returns the path component.
func (v *View) Path() string {
	return v.spans.Path.In(v.input)
}

// Query returns the query component, without the leading '?'.
func (v *View) Query() string {
	return v.spans.Query.In(v.input)
}

// Fragment returns the fragment component, without the leading '#'.
func (v *View) Fragment() string {
	return v.spans.Fragment.In(v.input)
}

// String returns the input of the view.
func (v *View) String() string {
	return v.input
}

// MarshalJSON implements the json.Marshaler interface, encoding the View as
// a JSON string.
func (v *View) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.input)
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON
// string and parses it; a parse that stops early is returned as an error.
func (v *View) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := Parse(s)
	if parsed.err != nil {
		return parsed.err
	}
	*v = *parsed
	return nil
}
