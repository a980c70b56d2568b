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
	"strings"

	"github.com/jplu/netview/internal/ascii"
)

// decode undoes the application/x-www-form-urlencoded escaping of s: '+'
// becomes a space and "%XY" becomes the byte 0xXY. Text without either is
// returned as is.
func decode(s string) (string, error) {
	if strings.IndexByte(s, tokenPercent) < 0 && strings.IndexByte(s, tokenPlus) < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case tokenPlus:
			b.WriteByte(' ')
		case tokenPercent:
			hi, lo, ok := readEscape(s, i)
			if !ok {
				return "", &EscapeError{Offset: i, Escape: s[i:min(i+3, len(s))]}
			}
			b.WriteByte(hi<<4 | lo)
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// readEscape returns the two nibbles following the '%' at s[i].
func readEscape(s string, i int) (byte, byte, bool) {
	if i+2 >= len(s) {
		return 0, 0, false
	}
	hi, ok1 := ascii.HexValue(s[i+1])
	lo, ok2 := ascii.HexValue(s[i+2])
	return hi, lo, ok1 && ok2
}
