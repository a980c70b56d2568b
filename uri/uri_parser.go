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
	tokenColon        = ':'
	tokenSlash        = '/'
	tokenQuestionMark = '?'
	tokenNumberSign   = '#'
	tokenBracketOpen  = '['
	tokenBracketClose = ']'
	tokenAt           = '@'
	tokenPercent      = '%'

	// authorityPrefix introduces the authority in a hier-part.
	authorityPrefix = "//"
	// authorityEnd holds the bytes that end an authority.
	authorityEnd = "/?#"
)

// run is the single entry point of the structural parser.
func run(input string) (Spans, error) {
	p := &uriParser{input: input}
	p.parse()
	return p.spans, p.err
}

// uriParser holds the state for a single parsing operation. Every parseX
// method takes the offset where its component starts and returns the number
// of bytes it consumed; zero means the component is absent or did not match.
type uriParser struct {
	input string
	spans Spans
	err   error
}

// parse drives scheme, hier-part, query and fragment from left to right.
// A component boundary, once fixed, is never revisited.
func (p *uriParser) parse() {
	n := p.parseScheme(0)
	if n == 0 {
		p.fail(&ParseError{Offset: 0, Err: ErrNoScheme})
		return
	}
	p.spans.Scheme = Span{Start: 0, End: n}
	pos := n + 1

	n = p.parseHierPart(pos)
	if n == 0 {
		return
	}
	pos += n
	pos += p.parseQuery(pos)
	pos += p.parseFragment(pos)

	if pos < len(p.input) {
		p.fail(&ParseError{Offset: pos, Err: ErrTrailingInput})
	}
}

// fail records the first error met. Later ones are consequences of it.
func (p *uriParser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// unsupported marks a production the parser does not implement. In a
// conformance build it panics instead.
func (p *uriParser) unsupported(production string, offset int) {
	err := &UnsupportedError{Production: production, Offset: offset}
	if conformance {
		panic(err)
	}
	p.fail(err)
}

// at checks if the byte at pos is c.
func (p *uriParser) at(pos int, c byte) bool {
	return pos < len(p.input) && p.input[pos] == c
}

// parseScheme consumes `ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )`. It only
// reports a match when a ':' follows; the ':' itself is not counted.
func (p *uriParser) parseScheme(pos int) int {
	if pos >= len(p.input) || !ascii.IsAlpha(p.input[pos]) {
		return 0
	}
	n := 1
	for pos+n < len(p.input) && ascii.IsSchemeChar(p.input[pos+n]) {
		n++
	}
	if !p.at(pos+n, tokenColon) {
		return 0
	}
	return n
}

// parseHierPart consumes `"//" authority path-abempty`. The path-absolute,
// path-rootless and path-empty forms are not supported.
func (p *uriParser) parseHierPart(pos int) int {
	if !strings.HasPrefix(p.input[pos:], authorityPrefix) {
		p.unsupported("hier-part", pos)
		return 0
	}
	n := len(authorityPrefix)
	n += p.parseAuthority(pos + n)
	n += p.parsePathAbempty(pos + n)
	return n
}

// parseAuthority consumes `[ userinfo "@" ] host [ ":" port ]`.
func (p *uriParser) parseAuthority(pos int) int {
	start := pos
	n, ok := p.parseUserinfo(pos)
	if !ok {
		return 0
	}
	if p.at(pos+n, tokenAt) {
		p.spans.Userinfo = Span{Start: pos, End: pos + n}
		pos += n + 1
	}
	pos += p.parseHost(pos)
	pos += p.parsePort(pos)
	p.spans.Authority = Span{Start: start, End: pos}
	return pos - start
}

// parseUserinfo is not implemented and always matches zero bytes. An '@'
// further into the authority means a userinfo was present; ok is false then
// and the rest of the authority must not be read as a host.
func (p *uriParser) parseUserinfo(pos int) (n int, ok bool) {
	rest := p.input[pos:]
	if end := strings.IndexAny(rest, authorityEnd); end >= 0 {
		rest = rest[:end]
	}
	if strings.IndexByte(rest, tokenAt) > 0 {
		p.unsupported("userinfo", pos)
		return 0, false
	}
	return 0, true
}

// parseHost consumes `IP-literal / IPv4address / reg-name`.
func (p *uriParser) parseHost(pos int) int {
	if p.at(pos, tokenBracketOpen) {
		return p.parseIPLiteral(pos)
	}
	if n := matchIPv4(p.input[pos:]); n > 0 {
		p.spans.Host = Span{Start: pos, End: pos + n}
		return n
	}
	return p.parseRegName(pos)
}

// parseIPLiteral consumes `"[" IPv6address "]"`. The host span excludes the
// brackets.
func (p *uriParser) parseIPLiteral(pos int) int {
	inner := pos + 1
	n := matchIPv6(p.input[inner:])
	if n == 0 || !p.at(inner+n, tokenBracketClose) {
		if p.at(inner, 'v') || p.at(inner, 'V') {
			p.unsupported("IPvFuture", inner)
		} else {
			p.fail(&ParseError{Offset: inner, Err: ErrInvalidIPLiteral})
		}
		return 0
	}
	p.spans.Host = Span{Start: inner, End: inner + n}
	return n + 2
}

// parseRegName is not implemented and always matches zero bytes. An empty
// reg-name is still valid, so only a reg-name character is reported.
func (p *uriParser) parseRegName(pos int) int {
	if pos < len(p.input) {
		c := p.input[pos]
		if ascii.IsUnreserved(c) || ascii.IsSubDelim(c) || c == tokenPercent {
			p.unsupported("reg-name", pos)
		}
	}
	return 0
}

// parsePort consumes `":" *DIGIT`. Without any digit the ':' is left alone.
func (p *uriParser) parsePort(pos int) int {
	if !p.at(pos, tokenColon) {
		return 0
	}
	start := pos + 1
	end := start
	for end < len(p.input) && ascii.IsDigit(p.input[end]) {
		end++
	}
	if end == start {
		return 0
	}
	p.spans.Port = Span{Start: start, End: end}
	return end - pos
}

// parsePathAbempty consumes `*( "/" segment )`.
func (p *uriParser) parsePathAbempty(pos int) int {
	start := pos
	for p.at(pos, tokenSlash) {
		pos++
		pos += p.parseSegment(pos)
	}
	p.spans.Path = Span{Start: start, End: pos}
	return pos - start
}

// parseSegment consumes `*pchar`.
func (p *uriParser) parseSegment(pos int) int {
	n := 0
	for pos+n < len(p.input) {
		c := p.input[pos+n]
		switch {
		case ascii.IsPChar(c):
			n++
		case c == tokenPercent:
			m := p.parsePctEncoded(pos + n)
			if m == 0 {
				return n
			}
			n += m
		default:
			return n
		}
	}
	return n
}

// parsePctEncoded is not implemented and always matches zero bytes.
func (p *uriParser) parsePctEncoded(pos int) int {
	p.unsupported("pct-encoded", pos)
	return 0
}

// parseQuery consumes `"?" query`, where the query runs up to '#' or the end.
func (p *uriParser) parseQuery(pos int) int {
	if !p.at(pos, tokenQuestionMark) {
		return 0
	}
	start := pos + 1
	end := len(p.input)
	if i := strings.IndexByte(p.input[start:], tokenNumberSign); i >= 0 {
		end = start + i
	}
	p.spans.Query = Span{Start: start, End: end}
	return end - pos
}

// parseFragment consumes `"#" fragment`, where the fragment runs to the end.
func (p *uriParser) parseFragment(pos int) int {
	if !p.at(pos, tokenNumberSign) {
		return 0
	}
	p.spans.Fragment = Span{Start: pos + 1, End: len(p.input)}
	return len(p.input) - pos
}
