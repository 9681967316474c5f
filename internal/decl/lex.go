// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package decl

import (
	"unicode"
	"unicode/utf8"
)

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Error
	Ident
	FlipFlop    // %
	Conjunction // &
	Arrow       // ->
	Comma
)

var typeNames = [...]string{
	EOF:         "end of line",
	Error:       "error",
	Ident:       "identifier",
	FlipFlop:    "'%'",
	Conjunction: "'&'",
	Arrow:       "'->'",
	Comma:       "','",
}

func (t Type) String() string { return typeNames[t] }

// Pos is a 1 based column number.
//
type Pos int

// An Item is a lexed token.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value string
}

// A StateFn is a lexer state function. It returns the next state, or nil to
// go back to the initial state.
//
type StateFn func(l *Lexer) StateFn

// Lexer splits a single declaration line into tokens.
//
type Lexer struct {
	input string
	start int // start of current token
	pos   int // current position
	width int // width of last rune read
	items []Item
	state StateFn
}

// NewLexer returns a new lexer for the given line.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

const eof = -1

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	l.width = w
	return r
}

func (l *Lexer) backup() { l.pos -= l.width }

func (l *Lexer) emit(t Type, v string) {
	l.items = append(l.items, Item{Type: t, Pos: Pos(l.start + 1), Value: v})
	l.start = l.pos
}

func (l *Lexer) ignore() { l.start = l.pos }

// Lex returns the next token. Once the end of the line or an error is
// reached, Lex keeps returning the same item.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			l.state = lexInit
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	if i.Type != EOF && i.Type != Error {
		l.items = l.items[1:]
	}
	return i
}

func lexInit(l *Lexer) StateFn {
	r := l.next()
	switch {
	case r == eof:
		return lexEOF
	case unicode.IsSpace(r):
		for unicode.IsSpace(r) {
			r = l.next()
		}
		l.backup()
		l.ignore()
	case isIdent(r):
		return lexIdent
	case r == '%':
		l.emit(FlipFlop, "%")
	case r == '&':
		l.emit(Conjunction, "&")
	case r == ',':
		l.emit(Comma, ",")
	case r == '-':
		if l.next() != '>' {
			l.emit(Error, "expected '->'")
			return lexError
		}
		l.emit(Arrow, "->")
	default:
		l.emit(Error, "unexpected character "+string(r))
		return lexError
	}
	return nil
}

func lexIdent(l *Lexer) StateFn {
	r := l.next()
	for isIdent(r) {
		r = l.next()
	}
	l.backup()
	l.emit(Ident, l.input[l.start:l.pos])
	return nil
}

func lexEOF(l *Lexer) StateFn {
	l.emit(EOF, "")
	return lexEOF
}

func lexError(l *Lexer) StateFn {
	return lexError
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
