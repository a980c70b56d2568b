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
	"strings"

	"github.com/jplu/netview/internal/ascii"
)

const (
	// ipv4Octets is the number of dec-octets in an IPv4address.
	ipv4Octets = 4
	// h16MaxDigits is the maximum number of hex digits in an h16.
	h16MaxDigits = 4
	// compression is the IPv6 zero-compression marker.
	compression = "::"
)

// All matchers below take the remaining input and return the number of bytes
// they consumed from its start. Zero means no match.

// matchDecOctet matches a dec-octet with a longest-match policy that never
// rescans: the first digit decides how many more digits may follow.
//
//	"0"           -> 1 digit
//	"1" DIGIT*2   -> up to 3 digits (100-199)
//	"2" %x30-34   -> 2 digits, plus one optional DIGIT (200-249)
//	"25" %x30-35  -> 3 digits (250-255), otherwise "25"
//	"2" other     -> 1 digit
//	%x33-39 DIGIT -> up to 2 digits
func matchDecOctet(s string) int {
	if s == "" {
		return 0
	}
	switch c := s[0]; {
	case c == '0':
		return 1
	case c == '1':
		n := 1
		for n < 3 && n < len(s) && ascii.IsDigit(s[n]) {
			n++
		}
		return n
	case c == '2':
		if len(s) < 2 {
			return 1
		}
		switch d := s[1]; {
		case '0' <= d && d <= '4':
			if len(s) > 2 && ascii.IsDigit(s[2]) {
				return 3
			}
			return 2
		case d == '5':
			if len(s) > 2 && '0' <= s[2] && s[2] <= '5' {
				return 3
			}
			return 2
		}
		return 1
	case '3' <= c && c <= '9':
		if len(s) > 1 && ascii.IsDigit(s[1]) {
			return 2
		}
		return 1
	}
	return 0
}

// matchIPv4 matches `dec-octet "." dec-octet "." dec-octet "." dec-octet`.
func matchIPv4(s string) int {
	n := matchDecOctet(s)
	if n == 0 {
		return 0
	}
	for range ipv4Octets - 1 {
		if n >= len(s) || s[n] != '.' {
			return 0
		}
		m := matchDecOctet(s[n+1:])
		if m == 0 {
			return 0
		}
		n += 1 + m
	}
	return n
}

// matchH16 matches 1 to 4 hex digits, as many as are present.
func matchH16(s string) int {
	n := 0
	for n < h16MaxDigits && n < len(s) && ascii.IsHexDigit(s[n]) {
		n++
	}
	return n
}

// matchH16Colon matches `h16 ":"`.
func matchH16Colon(s string) int {
	n := matchH16(s)
	if n == 0 || n >= len(s) || s[n] != ':' {
		return 0
	}
	return n + 1
}

// matchLS32 matches `( h16 ":" h16 ) / IPv4address`.
func matchLS32(s string) int {
	if n := matchH16Colon(s); n > 0 {
		if m := matchH16(s[n:]); m > 0 {
			return n + m
		}
	}
	return matchIPv4(s)
}

// matchCompressionPrefix matches `[ *(limit-1)( h16 ":" ) h16 ] "::"`, i.e.
// at most limit groups followed by the compression marker.
func matchCompressionPrefix(s string, limit int) int {
	if strings.HasPrefix(s, compression) {
		return len(compression)
	}
	n := 0
	for range limit {
		m := matchH16(s[n:])
		if m == 0 {
			return 0
		}
		n += m
		if strings.HasPrefix(s[n:], compression) {
			return n + len(compression)
		}
		if n >= len(s) || s[n] != ':' {
			return 0
		}
		n++
	}
	return 0
}

// ipv6Shape is one alternative of the IPv6address rule of RFC 3986,
// Section 3.2.2. A compressed shape starts with at most beforeLimit groups and
// "::"; then exactly afterLimit `h16 ":"` groups follow, closed by tail. A nil
// tail closes the address right there.
type ipv6Shape struct {
	compressed  bool
	beforeLimit int
	afterLimit  int
	tail        func(string) int
}

func (sh ipv6Shape) match(s string) int {
	n := 0
	if sh.compressed {
		n = matchCompressionPrefix(s, sh.beforeLimit)
		if n == 0 {
			return 0
		}
	}
	for range sh.afterLimit {
		m := matchH16Colon(s[n:])
		if m == 0 {
			return 0
		}
		n += m
	}
	if sh.tail == nil {
		return n
	}
	m := sh.tail(s[n:])
	if m == 0 {
		return 0
	}
	return n + m
}

// ipv6Shapes lists the nine alternatives in the order they are tried. No
// alternative is a prefix of a later one, so the first match is the answer.
var ipv6Shapes = [...]ipv6Shape{
	{afterLimit: 6, tail: matchLS32},                                   //                            6( h16 ":" ) ls32
	{compressed: true, beforeLimit: 0, afterLimit: 5, tail: matchLS32}, //                       "::" 5( h16 ":" ) ls32
	{compressed: true, beforeLimit: 1, afterLimit: 4, tail: matchLS32}, // [               h16 ] "::" 4( h16 ":" ) ls32
	{compressed: true, beforeLimit: 2, afterLimit: 3, tail: matchLS32}, // [ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32
	{compressed: true, beforeLimit: 3, afterLimit: 2, tail: matchLS32}, // [ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32
	{compressed: true, beforeLimit: 4, afterLimit: 1, tail: matchLS32}, // [ *3( h16 ":" ) h16 ] "::"    h16 ":"   ls32
	{compressed: true, beforeLimit: 5, afterLimit: 0, tail: matchLS32}, // [ *4( h16 ":" ) h16 ] "::"              ls32
	{compressed: true, beforeLimit: 6, afterLimit: 0, tail: matchH16},  // [ *5( h16 ":" ) h16 ] "::"              h16
	{compressed: true, beforeLimit: 7, afterLimit: 0},                  // [ *6( h16 ":" ) h16 ] "::"
}

// matchIPv6 matches an IPv6address, trying each shape from the same start.
func matchIPv6(s string) int {
	for _, sh := range ipv6Shapes {
		if n := sh.match(s); n > 0 {
			return n
		}
	}
	return 0
}
