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

// Package ascii holds the byte classifiers shared by the uri and form parsers.
// Every predicate is defined over the US-ASCII grammar of RFC 3986, Appendix A,
// and reports false for any byte above 0x7F.
package ascii

// IsDigit checks if a byte is an ASCII digit (DIGIT).
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsAlpha checks if a byte is an ASCII letter (ALPHA).
func IsAlpha(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

// IsHexDigit checks if a byte is an ASCII hexadecimal digit (HEXDIG), in
// either case.
func IsHexDigit(c byte) bool {
	_, ok := HexValue(c)
	return ok
}

// HexValue returns the value of the hexadecimal digit c.
func HexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// IsSchemeChar checks if a byte may follow the first letter of a scheme.
func IsSchemeChar(c byte) bool {
	return IsAlpha(c) || IsDigit(c) || c == '+' || c == '-' || c == '.'
}

// IsUnreserved checks if a byte is in the unreserved set of RFC 3986, Section 2.3.
func IsUnreserved(c byte) bool {
	return IsAlpha(c) || IsDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// IsSubDelim checks if a byte is one of the eleven sub-delims of RFC 3986, Section 2.2.
func IsSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// IsGenDelim checks if a byte is one of the gen-delims of RFC 3986, Section 2.2.
func IsGenDelim(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@':
		return true
	}
	return false
}

// IsPChar checks if a byte is a literal pchar. The pct-encoded alternative
// spans three bytes and is left to the caller.
func IsPChar(c byte) bool {
	return IsUnreserved(c) || IsSubDelim(c) || c == ':' || c == '@'
}
