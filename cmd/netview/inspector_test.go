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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestInspectURIJSON(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	ins := &inspector{Out: &out}
	if err := ins.inspectAll([]string{"scheme://[::1]:80/path?query#fragment"}); err != nil {
		t.Fatalf("inspectAll() error = %v", err)
	}
	var got uriReport
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output %q is not JSON: %v", out.String(), err)
	}
	want := uriReport{
		Input:     "scheme://[::1]:80/path?query#fragment",
		Scheme:    "scheme",
		Host:      "::1",
		Port:      "80",
		Authority: "[::1]:80",
		Path:      "/path",
		Query:     "query",
		Fragment:  "fragment",
	}
	if got != want {
		t.Errorf("report = %+v, want %+v", got, want)
	}
}

func TestInspectAllCountsFailures(t *testing.T) {
	t.Parallel()
	var out, logs bytes.Buffer
	ins := &inspector{Out: &out, LogOutput: &logs}
	err := ins.inspectAll([]string{"scheme://1.2.3.4", "no scheme", "http://example.com"})
	if !errors.Is(err, errInputFailed) {
		t.Fatalf("inspectAll() error = %v, want %v", err, errInputFailed)
	}
	if !strings.Contains(err.Error(), "2 of 3") {
		t.Errorf("inspectAll() error = %q, want a count of 2 of 3", err)
	}
	// Every input is reported, failed or not.
	if n := strings.Count(out.String(), "\n"); n != 3 {
		t.Errorf("inspectAll() wrote %d reports, want 3:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "reg-name is not supported") {
		t.Errorf("output lacks the unsupported error:\n%s", out.String())
	}
	if !strings.Contains(logs.String(), `"Method":"inspectAll"`) {
		t.Errorf("logs lack the failure entry:\n%s", logs.String())
	}
}

func TestInspectForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		charset string
		input   string
		want    []pairReport
		rest    string
		wantErr bool
	}{
		{
			name:  "pairs",
			input: "alpha=hydrogen+gas&bravo=helium%3D2",
			want: []pairReport{
				{Key: "alpha", Value: "hydrogen gas", LiteralKey: "alpha", LiteralValue: "hydrogen+gas"},
				{Key: "bravo", Value: "helium=2", LiteralKey: "bravo", LiteralValue: "helium%3D2"},
			},
		},
		{
			name:  "halts early",
			input: "alpha=hydrogen&bravo=",
			want:  []pairReport{{Key: "alpha", Value: "hydrogen", LiteralKey: "alpha", LiteralValue: "hydrogen"}},
			rest:  "&bravo=",
		},
		{
			name:    "latin1",
			charset: "latin1",
			input:   "drink=caf%E9",
			want:    []pairReport{{Key: "drink", Value: "café", LiteralKey: "drink", LiteralValue: "caf%E9"}},
		},
		{
			name:    "auto",
			charset: charsetAuto,
			input:   "word=plain",
			want:    []pairReport{{Key: "word", Value: "plain", LiteralKey: "word", LiteralValue: "plain"}},
		},
		{name: "bad escape", input: "alpha=%zz", want: []pairReport{}, wantErr: true},
		{name: "unknown charset", charset: "klingon", input: "a=b", want: []pairReport{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ins := &inspector{Form: true, Charset: tt.charset}
			r, err := ins.inspectForm(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("inspectForm() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && r.Error == "" {
				t.Error("report does not carry the error")
			}
			if !slices.Equal(r.Pairs, tt.want) {
				t.Errorf("inspectForm() pairs = %+v, want %+v", r.Pairs, tt.want)
			}
			if r.Rest != tt.rest {
				t.Errorf("inspectForm() rest = %q, want %q", r.Rest, tt.rest)
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	ins := &inspector{Out: &out, Form: true, Text: true}
	if err := ins.inspectAll([]string{"%E5%90%8D%E5%89%8D=Ada&id=7"}); err != nil {
		t.Fatalf("inspectAll() error = %v", err)
	}
	// "名前" is four cells wide but only two runes.
	want := "input      %E5%90%8D%E5%89%8D=Ada&id=7\n" +
		"pair 名前  Ada\n" +
		"pair id    7\n" +
		"\n"
	if out.String() != want {
		t.Errorf("text output = %q, want %q", out.String(), want)
	}
}

// TestWriteTextReservedKeys checks that form keys cannot pass for the fixed
// report rows.
func TestWriteTextReservedKeys(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	ins := &inspector{Out: &out, Form: true, Text: true}
	if err := ins.inspectAll([]string{"error=none&rest=all"}); err != nil {
		t.Fatalf("inspectAll() error = %v", err)
	}
	want := "input       error=none&rest=all\n" +
		"pair error  none\n" +
		"pair rest   all\n" +
		"\n"
	if out.String() != want {
		t.Errorf("text output = %q, want %q", out.String(), want)
	}
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "error ") || strings.HasPrefix(line, "rest ") {
			t.Errorf("pair printed as a fixed row: %q", line)
		}
	}
}

func TestWriteTextURI(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	ins := &inspector{Out: &out, Text: true}
	if err := ins.inspectAll([]string{"scheme://1.2.3.4:80"}); err != nil {
		t.Fatalf("inspectAll() error = %v", err)
	}
	want := "input      scheme://1.2.3.4:80\n" +
		"scheme     scheme\n" +
		"host       1.2.3.4\n" +
		"port       80\n" +
		"authority  1.2.3.4:80\n" +
		"\n"
	if out.String() != want {
		t.Errorf("text output = %q, want %q", out.String(), want)
	}
}

func TestReadInputs(t *testing.T) {
	t.Parallel()
	got, err := readInputs(nil, strings.NewReader("scheme://1.2.3.4\r\n\n  \nalpha=hydrogen\n"))
	if err != nil {
		t.Fatalf("readInputs() error = %v", err)
	}
	if want := []string{"scheme://1.2.3.4", "alpha=hydrogen"}; !slices.Equal(got, want) {
		t.Errorf("readInputs() = %q, want %q", got, want)
	}

	args := []string{"a", "b"}
	got, err = readInputs(args, strings.NewReader("ignored\n"))
	if err != nil || !slices.Equal(got, args) {
		t.Errorf("readInputs(args) = (%q, %v), want (%q, nil)", got, err, args)
	}
}

func TestLogDisabledByDefault(t *testing.T) {
	t.Parallel()
	ins := &inspector{}
	// Must not panic without an output.
	ins.Log().Debug().Str("Method", "test").Msg("discarded")
}
