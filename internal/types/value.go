package types

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNumber Kind = iota
	KindSymbol
	KindKeyword
	KindString
	KindBoolean
	KindNil
	KindError
	KindList
	KindVector
)

var kindNames = [...]string{
	KindNumber:  "number",
	KindSymbol:  "symbol",
	KindKeyword: "keyword",
	KindString:  "string",
	KindBoolean: "boolean",
	KindNil:     "nil",
	KindError:   "error",
	KindList:    "list",
	KindVector:  "vector",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is a node of the syntax tree. The set of implementations is closed:
// only the types in this package satisfy it.
type Value interface {
	Kind() Kind
	value()
}

// KeywordPrefix marks the stored text of a Keyword. It cannot come from the
// reader as part of a symbol, so keywords and symbols never collide.
const KeywordPrefix = "\u029e"

type Number int32

type Symbol string

// Keyword stores its name behind KeywordPrefix.
type Keyword struct {
	text string
}

type String string

type Boolean bool

type Nil struct{}

// Error carries a read failure through the pipeline as a value.
type Error struct {
	Message string
}

// List is an immutable, parenthesized sequence.
type List struct {
	elems []Value
}

// Vector is an immutable, bracketed sequence.
type Vector struct {
	elems []Value
}

func (Number) Kind() Kind { return KindNumber }
func (Symbol) Kind() Kind { return KindSymbol }
func (Keyword) Kind() Kind { return KindKeyword }
func (String) Kind() Kind { return KindString }
func (Boolean) Kind() Kind { return KindBoolean }
func (Nil) Kind() Kind { return KindNil }
func (Error) Kind() Kind { return KindError }
func (List) Kind() Kind { return KindList }
func (Vector) Kind() Kind { return KindVector }

func (Number) value() {}
func (Symbol) value() {}
func (Keyword) value() {}
func (String) value() {}
func (Boolean) value() {}
func (Nil) value() {}
func (Error) value() {}
func (List) value() {}
func (Vector) value() {}

// NewKeyword builds a keyword from its bare name ("foo" for :foo). The name is
// stored as given, so distinct names always give distinct keywords.
func NewKeyword(name string) Keyword {
	return Keyword{text: KeywordPrefix + name}
}

// Name returns the keyword without its prefix.
func (k Keyword) Name() string {
	return strings.TrimPrefix(k.text, KeywordPrefix)
}

// Text returns the stored, prefixed text.
func (k Keyword) Text() string {
	if k.text == "" {
		return KeywordPrefix
	}
	return k.text
}

func NewError(format string, args ...any) Error {
	return Error{Message: fmt.Sprintf(format, args...)}
}

func NewList(elems ...Value) List {
	return List{elems: clone(elems)}
}

func NewVector(elems ...Value) Vector {
	return Vector{elems: clone(elems)}
}

func (l List) Len() int { return len(l.elems) }
func (l List) At(i int) Value { return l.elems[i] }
func (l List) Elems() []Value { return clone(l.elems) }
func (v Vector) Len() int { return len(v.elems) }
func (v Vector) At(i int) Value { return v.elems[i] }
func (v Vector) Elems() []Value { return clone(v.elems) }

// Seq returns the elements of a List or Vector.
func Seq(v Value) ([]Value, bool) {
	switch s := v.(type) {
	case List:
		return s.Elems(), true
	case Vector:
		return s.Elems(), true
	}
	return nil, false
}

func clone(elems []Value) []Value {
	if len(elems) == 0 {
		return nil
	}
	out := make([]Value, len(elems))
	copy(out, elems)
	return out
}
