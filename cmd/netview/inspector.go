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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jplu/netview/form"
	"github.com/jplu/netview/uri"
)

const (
	formatJSON = "json"
	formatText = "text"

	// pairLabel prefixes form keys in text output, apart from the fixed rows.
	pairLabel = "pair "

	// charsetAuto asks for the form charset to be detected.
	charsetAuto = "auto"
)

var errInputFailed = errors.New("inputs failed to parse")

// inspector parses inputs and writes one report per input to Out.
type inspector struct {
	Out     io.Writer
	Form    bool
	Charset string
	Text    bool

	Logger      zerolog.Logger
	LogOutput   io.Writer
	initLogOnce sync.Once
}

// Log returns the zerolog logger, initializing it lazily if LogOutput is set.
// Without LogOutput the zero logger discards everything.
func (ins *inspector) Log() *zerolog.Logger {
	if ins.LogOutput != nil {
		ins.initLogOnce.Do(func() {
			ins.Logger = zerolog.New(ins.LogOutput).With().Timestamp().Logger()
		})
	}
	return &ins.Logger
}

type uriReport struct {
	Input     string `json:"input"`
	Scheme    string `json:"scheme,omitempty"`
	Userinfo  string `json:"userinfo,omitempty"`
	Host      string `json:"host,omitempty"`
	Port      string `json:"port,omitempty"`
	Authority string `json:"authority,omitempty"`
	Path      string `json:"path,omitempty"`
	Query     string `json:"query,omitempty"`
	Fragment  string `json:"fragment,omitempty"`
	Error     string `json:"error,omitempty"`
}

type pairReport struct {
	Key          string `json:"key"`
	Value        string `json:"value"`
	LiteralKey   string `json:"literalKey"`
	LiteralValue string `json:"literalValue"`
}

type formReport struct {
	Input   string       `json:"input"`
	Charset string       `json:"charset,omitempty"`
	Pairs   []pairReport `json:"pairs"`
	Rest    string       `json:"rest,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// inspectAll reports every input, even after a failure, and returns an error
// counting the failed ones.
func (ins *inspector) inspectAll(inputs []string) error {
	failed := 0
	for _, input := range inputs {
		var report any
		var err error
		if ins.Form {
			report, err = ins.inspectForm(input)
		} else {
			report, err = ins.inspectURI(input)
		}
		if err != nil {
			ins.Log().Error().Str("Method", "inspectAll").Str("Input", input).Err(err).Msg("input failed")
			failed++
		}
		if err := ins.write(report); err != nil {
			return errors.Wrap(err, "inspectAll write error")
		}
	}
	if failed > 0 {
		return errors.Wrapf(errInputFailed, "%d of %d", failed, len(inputs))
	}
	return nil
}

func (ins *inspector) inspectURI(input string) (*uriReport, error) {
	v := uri.Parse(input)
	ins.Log().Debug().Str("Method", "inspectURI").Str("Input", input).
		Str("Scheme", v.Scheme()).Str("Host", v.Host()).Str("Port", v.Port()).Msg("parsed")

	r := &uriReport{
		Input:     input,
		Scheme:    v.Scheme(),
		Userinfo:  v.Userinfo(),
		Host:      v.Host(),
		Port:      v.Port(),
		Authority: v.Authority(),
		Path:      v.Path(),
		Query:     v.Query(),
		Fragment:  v.Fragment(),
	}
	if err := v.Err(); err != nil {
		r.Error = err.Error()
		return r, errors.Wrap(err, "inspectURI error")
	}
	return r, nil
}

func (ins *inspector) inspectForm(input string) (*formReport, error) {
	r := &formReport{Input: input, Pairs: []pairReport{}}

	v, err := ins.newFormView(input)
	if err != nil {
		r.Error = err.Error()
		return r, err
	}
	r.Charset = v.Charset()

	for key, value := range v.All() {
		decodedKey, err := v.Key()
		if err != nil {
			r.Error = err.Error()
			return r, errors.Wrapf(err, "inspectForm error in key %q", key)
		}
		decodedValue, err := form.ValueAs[string](v)
		if err != nil {
			r.Error = err.Error()
			return r, errors.Wrapf(err, "inspectForm error in value of %q", key)
		}
		ins.Log().Debug().Str("Method", "inspectForm").Int("Pair", v.Count()).
			Str("Key", decodedKey).Str("Value", decodedValue).Msg("pair")
		r.Pairs = append(r.Pairs, pairReport{
			Key:          decodedKey,
			Value:        decodedValue,
			LiteralKey:   key,
			LiteralValue: value,
		})
	}
	r.Rest = v.Remainder()
	return r, nil
}

func (ins *inspector) newFormView(input string) (*form.View, error) {
	label := ins.Charset
	if label == charsetAuto {
		detected, err := form.DetectCharset(input)
		if err != nil {
			return nil, errors.Wrap(err, "newFormView charset detection error")
		}
		ins.Log().Debug().Str("Method", "newFormView").Str("Charset", detected).Msg("detected charset")
		label = detected
	}
	if label == "" {
		return form.New(input), nil
	}
	v, err := form.NewWithCharset(input, label)
	if err != nil {
		return nil, errors.Wrap(err, "newFormView error")
	}
	return v, nil
}

func (ins *inspector) write(report any) error {
	if !ins.Text {
		return json.NewEncoder(ins.Out).Encode(report)
	}
	var rows [][2]string
	switch r := report.(type) {
	case *uriReport:
		rows = [][2]string{
			{"input", r.Input},
			{"scheme", r.Scheme},
			{"userinfo", r.Userinfo},
			{"host", r.Host},
			{"port", r.Port},
			{"authority", r.Authority},
			{"path", r.Path},
			{"query", r.Query},
			{"fragment", r.Fragment},
			{"error", r.Error},
		}
	case *formReport:
		rows = append(rows, [2]string{"input", r.Input}, [2]string{"charset", r.Charset})
		for _, p := range r.Pairs {
			rows = append(rows, [2]string{pairLabel + p.Key, p.Value})
		}
		rows = append(rows, [2]string{"rest", r.Rest}, [2]string{"error", r.Error})
	default:
		return errors.Errorf("write error: unexpected report %T", report)
	}
	return writeRows(ins.Out, rows)
}

// writeRows prints non-empty rows as two aligned columns, then a blank line.
// Keys may hold wide characters, so widths are measured in terminal cells.
func writeRows(w io.Writer, rows [][2]string) error {
	width := 0
	for _, row := range rows {
		if row[1] != "" {
			width = max(width, runewidth.StringWidth(row[0]))
		}
	}
	var b strings.Builder
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "%s  %s\n", runewidth.FillRight(row[0], width), row[1])
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// readInputs returns args, or the non-blank lines of r when args is empty.
func readInputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); strings.TrimSpace(line) != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "readInputs error")
	}
	return inputs, nil
}
