// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"regexp"
	"sync"
	"unicode/utf8"
)

// Token is one lexeme of source text. It carries no type tag: its Class is
// derived from the text when the reader needs it.
type Token struct {
	Text string
	Pos  Position
}

type Position struct {
	Filename string
	Offset   int // 0-based absolute index in input
	Line     int // 1-based
	Column   int // 1-based
}

// Class is the lexical class of a token.
type Class int

const (
	ILLEGAL Class = iota

	// Delimiters
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE

	// Reader macros
	QUOTE
	QUASIQUOTE
	UNQUOTE
	SPLICE_UNQUOTE
	DEREF
	META

	// Atoms
	STRING
	NUMBER
	KEYWORD
	CONSTANT
	SYMBOL
)

var classNames = map[Class]string{
	ILLEGAL:        "ILLEGAL",
	LEFT_PAREN:     "LEFT_PAREN",
	RIGHT_PAREN:    "RIGHT_PAREN",
	LEFT_BRACKET:   "LEFT_BRACKET",
	RIGHT_BRACKET:  "RIGHT_BRACKET",
	LEFT_BRACE:     "LEFT_BRACE",
	RIGHT_BRACE:    "RIGHT_BRACE",
	QUOTE:          "QUOTE",
	QUASIQUOTE:     "QUASIQUOTE",
	UNQUOTE:        "UNQUOTE",
	SPLICE_UNQUOTE: "SPLICE_UNQUOTE",
	DEREF:          "DEREF",
	META:           "META",
	STRING:         "STRING",
	NUMBER:         "NUMBER",
	KEYWORD:        "KEYWORD",
	CONSTANT:       "CONSTANT",
	SYMBOL:         "SYMBOL",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "ILLEGAL"
}

var delimiters = map[string]Class{
	"(":  LEFT_PAREN,
	")":  RIGHT_PAREN,
	"[":  LEFT_BRACKET,
	"]":  RIGHT_BRACKET,
	"{":  LEFT_BRACE,
	"}":  RIGHT_BRACE,
	"'":  QUOTE,
	"`":  QUASIQUOTE,
	"~":  UNQUOTE,
	"~@": SPLICE_UNQUOTE,
	"@":  DEREF,
	"^":  META,
}

// CONSTANTS maps the reserved words to their class.
var CONSTANTS = map[string]bool{
	"true":  true,
	"false": true,
	"nil":   true,
}

// integer matches a whole token made of digits with an optional leading minus.
var integer = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^-?[0-9]+$`)
})

// IsInt reports whether text is an integer literal.
func IsInt(text string) bool {
	return integer().MatchString(text)
}

// Classify derives the lexical class of a token text.
func Classify(text string) Class {
	if text == "" {
		return ILLEGAL
	}
	if c, ok := delimiters[text]; ok {
		return c
	}

	switch {
	case text[0] == '"':
		return STRING
	case IsInt(text):
		return NUMBER
	case CONSTANTS[text]:
		return CONSTANT
	case text[0] == ':':
		return KEYWORD
	}
	return SYMBOL
}

// Class is shorthand for Classify(t.Text).
func (t Token) Class() Class {
	return Classify(t.Text)
}

// End returns the position just past the token. Offset counts bytes and
// Column counts runes. Tokens spanning lines report the column as if the text
// were on one line.
func (t Token) End() Position {
	return Position{
		Filename: t.Pos.Filename,
		Offset:   t.Pos.Offset + len(t.Text),
		Line:     t.Pos.Line,
		Column:   t.Pos.Column + utf8.RuneCountInString(t.Text),
	}
}
