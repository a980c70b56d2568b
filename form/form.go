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

// Package form iterates over an application/x-www-form-urlencoded body
// without copying it.
//
// A View walks the body one key=value pair at a time. LiteralKey and
// LiteralValue return substrings of the input; Key, Value and ValueAs
// percent-decode on demand, and transcode to UTF-8 when the view was built
// with NewWithCharset.
//
// Iteration stops for good at the first pair that does not have the form
// text "=" text, at the first pair not introduced by '&', and at the end of
// the input.
package form

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

const (
	tokenAmpersand = '&'
	tokenEqual     = '='
	tokenPlus      = '+'
	tokenPercent   = '%'

	// textEnd holds the bytes that end a key or a value.
	textEnd = "&="
)

// View is a cursor over the pairs of a form body. It is not safe for
// concurrent use.
type View struct {
	input string
	pos   int
	key   string
	value string
	count int
	valid bool
	done  bool

	enc     encoding.Encoding
	charset string
}

// New returns a view positioned on the first pair of input, if any.
func New(input string) *View {
	v := &View{input: input}
	v.Next()
	return v
}

// NewWithCharset is like New, but Key, Value and ValueAs also transcode the
// decoded bytes from the encoding named by label into UTF-8. Labels are
// resolved the way browsers do, e.g. "latin1" is windows-1252.
func NewWithCharset(input, label string) (*View, error) {
	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, label)
	}
	v := &View{input: input, enc: enc, charset: name}
	v.Next()
	return v, nil
}

// Next moves to the following pair and reports whether there is one. Once
// it returns false, it always does.
func (v *View) Next() bool {
	if v.done {
		return false
	}
	pos := v.pos
	if v.count > 0 {
		if pos >= len(v.input) || v.input[pos] != tokenAmpersand {
			return v.exhaust()
		}
		pos++
	}

	keyEnd := textSpan(v.input, pos)
	if keyEnd == pos || keyEnd >= len(v.input) || v.input[keyEnd] != tokenEqual {
		return v.exhaust()
	}
	valueStart := keyEnd + 1
	valueEnd := textSpan(v.input, valueStart)
	if valueEnd == valueStart {
		return v.exhaust()
	}

	v.key = v.input[pos:keyEnd]
	v.value = v.input[valueStart:valueEnd]
	v.pos = valueEnd
	v.count++
	v.valid = true
	return true
}

// textSpan returns the end offset of the text starting at pos.
func textSpan(s string, pos int) int {
	if i := strings.IndexAny(s[pos:], textEnd); i >= 0 {
		return pos + i
	}
	return len(s)
}

func (v *View) exhaust() bool {
	v.key, v.value = "", ""
	v.valid = false
	v.done = true
	return false
}

// Valid reports whether the view is positioned on a pair.
func (v *View) Valid() bool {
	return v.valid
}

// Count returns the number of pairs produced so far.
func (v *View) Count() int {
	return v.count
}

// Remainder returns the part of the input after the current pair.
func (v *View) Remainder() string {
	return v.input[v.pos:]
}

// Charset returns the canonical name of the charset values are transcoded
// from, or "" when none was given.
func (v *View) Charset() string {
	return v.charset
}

// LiteralKey returns the current key as it appears in the input.
func (v *View) LiteralKey() string {
	return v.key
}

// LiteralValue returns the current value as it appears in the input.
func (v *View) LiteralValue() string {
	return v.value
}

// Key returns the current key, decoded.
func (v *View) Key() (string, error) {
	return v.decode(v.key)
}

// Value returns the current value, decoded.
func (v *View) Value() (string, error) {
	return v.decode(v.value)
}

func (v *View) decode(s string) (string, error) {
	out, err := decode(s)
	if err != nil || v.enc == nil {
		return out, err
	}
	out, err = v.enc.NewDecoder().String(out)
	if err != nil {
		return "", fmt.Errorf("transcoding from %s: %w", v.charset, err)
	}
	return out, nil
}

// ValueAs returns the current value, decoded, as a string-like or
// byte-slice-like type.
func ValueAs[T ~string | ~[]byte](v *View) (T, error) {
	s, err := v.Value()
	if err != nil {
		var zero T
		return zero, err
	}
	return T(s), nil
}

// All returns an iterator over the literal pairs, starting with the current
// one. Ranging over it advances the view.
func (v *View) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for ok := v.valid; ok; ok = v.Next() {
			if !yield(v.key, v.value) {
				return
			}
		}
	}
}
