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

// Command netview prints the components of URIs or the pairs of form bodies.
//
//	netview [-form] [-charset label|auto] [-format json|text] [-debug] [input ...]
//
// Inputs are taken from the arguments, or one per line from stdin when there
// are none. The exit status is 1 if any input failed to parse.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

var (
	formPtr    = flag.Bool("form", false, "Parse inputs as application/x-www-form-urlencoded bodies instead of URIs.")
	charsetArg = flag.String("charset", "", "Charset of form values, or \"auto\" to detect it. (Implies -form)")
	formatArg  = flag.String("format", formatJSON, "Output format: json or text.")
	debugPtr   = flag.Bool("debug", false, "Log each parsing step to stderr.")
)

func main() {
	flag.Parse()
	check(checkflags())

	ins := &inspector{
		Out:     os.Stdout,
		Form:    *formPtr || *charsetArg != "",
		Charset: *charsetArg,
		Text:    *formatArg == formatText,
	}
	if *debugPtr {
		ins.LogOutput = os.Stderr
	}

	inputs, err := readInputs(flag.Args(), os.Stdin)
	check(err)
	check(ins.inspectAll(inputs))
}

func check(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}

func checkflags() error {
	switch *formatArg {
	case formatJSON, formatText:
		return nil
	}
	return errors.Errorf("checkflags error: unknown output format %q", *formatArg)
}
