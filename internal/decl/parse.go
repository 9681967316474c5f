// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package decl parses module list descriptions:
//
//	# comment
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
//
// Each line declares one module: an optional kind marker ('%' for flip-flops,
// '&' for conjunctions), the module name, an arrow and a comma separated list
// of destinations. Blank lines and lines starting with '#' are ignored.
//
package decl

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Line is a parsed module declaration.
//
type Line struct {
	Num    int  // line number
	Marker Type // EOF (no marker), FlipFlop or Conjunction
	Name   string
	Dst    []string
}

// Parse reads all declarations from r.
//
func Parse(r io.Reader) ([]Line, error) {
	var out []Line
	s := bufio.NewScanner(r)
	num := 0
	for s.Scan() {
		num++
		text := s.Text()
		if isBlank(text) {
			continue
		}
		l, err := ParseLine(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", num)
		}
		l.Num = num
		out = append(out, l)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read declarations")
	}
	return out, nil
}

func isBlank(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r':
			continue
		case '#':
			return true
		}
		return false
	}
	return true
}

// ParseLine parses a single declaration.
//
func ParseLine(text string) (Line, error) {
	var out Line
	l := NewLexer(text)

	i := l.Lex()
	if i.Type == FlipFlop || i.Type == Conjunction {
		out.Marker = i.Type
		i = l.Lex()
	}
	if i.Type != Ident {
		return out, parseError(i, "expected module name")
	}
	out.Name = i.Value

	if i = l.Lex(); i.Type != Arrow {
		return out, parseError(i, "expected '->'")
	}

	i = l.Lex()
	if i.Type == EOF {
		return out, nil
	}
	for {
		if i.Type != Ident {
			return out, parseError(i, "expected destination name")
		}
		out.Dst = append(out.Dst, i.Value)
		i = l.Lex()
		switch i.Type {
		case EOF:
			return out, nil
		case Comma:
			i = l.Lex()
		default:
			return out, parseError(i, "expected comma or end of line")
		}
	}
}

func parseError(i Item, msg string) error {
	if i.Type == Error {
		return errors.Errorf("col %d: %s", i.Pos, i.Value)
	}
	return errors.Errorf("col %d: %s, got %v", i.Pos, msg, i.Type)
}
