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
	"fmt"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// defaultCharset is reported for forms whose decoded bytes are all ASCII, and
// when the detected charset has no WHATWG encoding.
const defaultCharset = "utf-8"

// DetectCharset guesses the charset the form was encoded with, from the
// percent-decoded bytes of its keys and values. The result is a WHATWG name
// that NewWithCharset accepts. Only the pairs New would produce are inspected.
func DetectCharset(input string) (string, error) {
	var sample strings.Builder
	v := New(input)
	for ok := v.valid; ok; ok = v.Next() {
		for _, text := range [...]string{v.key, v.value} {
			decoded, err := decode(text)
			if err != nil {
				return "", err
			}
			sample.WriteString(decoded)
			sample.WriteByte(' ')
		}
	}
	if isASCII(sample.String()) {
		return defaultCharset, nil
	}

	result, err := chardet.NewTextDetector().DetectBest([]byte(sample.String()))
	if err != nil {
		return "", fmt.Errorf("detecting charset: %w", err)
	}
	return canonicalCharset(result.Charset), nil
}

// canonicalCharset maps a detector name to its WHATWG name. Names with no
// WHATWG encoding, such as "IBM424_rtl", fall back to defaultCharset.
func canonicalCharset(name string) string {
	if enc, canonical := charset.Lookup(name); enc != nil {
		return canonical
	}
	return defaultCharset
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
