//go:build !netview_conformance

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

//nolint:testpackage // This is a white-box test file. It needs to be in the same package to test unexported functions.
package uri

import (
	"testing"
)

// FuzzParse checks that every span stays inside the input and that the
// components appear in their grammar order.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"scheme://",
		"scheme://1.2.3.4:80/path?query#fragment",
		"scheme://[1111:2222::1.2.3.4]/a",
		"scheme://[v1.x]",
		"scheme://@1.2.3.4",
		"http://example.com",
		"mailto:user@host",
		"s://[::",
		"s://1.2.3.4/a%20b?c%zz",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		v := Parse(input)
		s := v.Spans()
		ordered := []Span{s.Scheme, s.Authority, s.Path, s.Query, s.Fragment}
		last := 0
		for _, sp := range append(ordered, s.Userinfo, s.Host, s.Port) {
			if sp.Start < 0 || sp.End > len(input) || sp.Start > sp.End {
				t.Fatalf("Parse(%q) span %+v out of range", input, sp)
			}
		}
		for _, sp := range ordered {
			if sp.IsEmpty() {
				continue
			}
			if sp.Start < last {
				t.Fatalf("Parse(%q) spans out of order: %+v", input, s)
			}
			last = sp.End
		}
		if v.Err() == nil && v.Scheme() == "" {
			t.Fatalf("Parse(%q) accepted an input without scheme", input)
		}
	})
}

func BenchmarkParse(b *testing.B) {
	inputs := []string{
		"scheme://1.2.3.4:80/path?query#fragment",
		"scheme://[1111:2222:3333:4444:5555:6666:7777::]:443/a/b/c",
		"scheme://[::ffff:192.0.2.1]/",
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, s := range inputs {
			_ = Parse(s)
		}
	}
}

func BenchmarkMatchIPv6(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = matchIPv6("1111:2222:3333:4444:5555:6666::1234")
	}
}
