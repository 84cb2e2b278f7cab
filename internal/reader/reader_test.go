package reader

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	merrors "mal/internal/errors"
	"mal/internal/token"
	"mal/internal/types"
)

func read(t *testing.T, source string) types.Value {
	t.Helper()

	v, err := ReadStr(source)
	require.NoError(t, err, "reading %q", source)
	return v
}

func readErr(t *testing.T, source string) *merrors.CompilerError {
	t.Helper()

	_, err := ReadStr(source)
	require.Error(t, err, "reading %q", source)

	var cerr *merrors.CompilerError
	require.True(t, errors.As(err, &cerr), "expected a CompilerError, got %T", err)
	return cerr
}

func TestReadNestedList(t *testing.T) {
	expected := types.NewList(
		types.Symbol("+"),
		types.Number(1),
		types.NewList(types.Symbol("*"), types.Number(2), types.Number(3)),
	)

	assert.Equal(t, expected, read(t, "(+ 1 (* 2 3))"))
	assert.Equal(t, expected, read(t, "(+ 1, (* 2, 3))"))
}

func TestReadVector(t *testing.T) {
	v := read(t, "[1 2]")

	assert.Equal(t, types.NewVector(types.Number(1), types.Number(2)), v)
	assert.False(t, types.Equal(v, types.NewList(types.Number(1), types.Number(2))))
}

func TestReadEmptyContainers(t *testing.T) {
	assert.Equal(t, types.NewList(), read(t, "()"))
	assert.Equal(t, types.NewVector(), read(t, "[ ]"))
	assert.Equal(t, types.NewList(types.NewVector(), types.NewList()), read(t, "([] ())"))
}

func TestReadAtoms(t *testing.T) {
	tests := []struct {
		input    string
		expected types.Value
	}{
		{"12", types.Number(12)},
		{"0", types.Number(0)},
		{"-5", types.Number(-5)},
		{"2147483647", types.Number(math.MaxInt32)},
		{"-2147483648", types.Number(math.MinInt32)},
		{"true", types.Boolean(true)},
		{"false", types.Boolean(false)},
		{"nil", types.Nil{}},
		{":foo", types.NewKeyword("foo")},
		{"x", types.Symbol("x")},
		{"-", types.Symbol("-")},
		{"abc-def!", types.Symbol("abc-def!")},
		{"Nil", types.Symbol("Nil")},
		{`"hi there"`, types.String("hi there")},
		{`"a\nb"`, types.String("a\nb")},
		{`"q\"q"`, types.String(`q"q`)},
		{`"back\\slash"`, types.String(`back\slash`)},
		{`""`, types.String("")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, read(t, tt.input), "reading %q", tt.input)
	}
}

func TestReadNegativeNumberKeepsSign(t *testing.T) {
	v := read(t, "-5")

	assert.Equal(t, types.Number(-5), v)
	assert.NotEqual(t, types.Number(5), v)
}

func TestReadKeywordIsNotSymbol(t *testing.T) {
	v := read(t, ":foo")

	kw, ok := v.(types.Keyword)
	require.True(t, ok)
	assert.Equal(t, types.KeywordPrefix+"foo", kw.Text())
	assert.False(t, types.Equal(v, types.Symbol("foo")))
}

func TestReadIgnoresTrailingForms(t *testing.T) {
	assert.Equal(t, types.Symbol("abc"), read(t, "abc def"))
	assert.Equal(t, types.NewList(types.Number(1)), read(t, "(1) (2)"))
}

func TestReadMacros(t *testing.T) {
	x := types.Symbol("x")
	tests := []struct {
		input    string
		expected types.Value
	}{
		{"'x", types.NewList(types.Symbol("quote"), x)},
		{"`x", types.NewList(types.Symbol("quasiquote"), x)},
		{"~x", types.NewList(types.Symbol("unquote"), x)},
		{"~@(x)", types.NewList(types.Symbol("splice-unquote"), types.NewList(x))},
		{"@x", types.NewList(types.Symbol("deref"), x)},
		{"^m x", types.NewList(types.Symbol("with-meta"), x, types.Symbol("m"))},
		{"''x", types.NewList(types.Symbol("quote"), types.NewList(types.Symbol("quote"), x))},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, read(t, tt.input), "reading %q", tt.input)
	}
}

func TestReadEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", ",,,", "; only a comment"} {
		_, err := ReadStr(input)
		assert.ErrorIs(t, err, ErrNoForm, "reading %q", input)
	}
}

func TestReadUnterminatedContainers(t *testing.T) {
	err := readErr(t, "(1 2")
	assert.Equal(t, merrors.ErrorUnexpectedEOF, err.Code)
	assert.Equal(t, "expected ')', got EOF", err.Message)
	assert.Equal(t, 1, err.Position.Column, "points at the opening delimiter")

	err = readErr(t, "[1 (2)")
	assert.Equal(t, "expected ']', got EOF", err.Message)

	err = readErr(t, "(((")
	assert.Equal(t, merrors.ErrorUnexpectedEOF, err.Code)
	assert.Equal(t, 3, err.Position.Column, "innermost container fails first")
}

func TestReadStrayClosers(t *testing.T) {
	for _, input := range []string{")", "]", "}", "(1 ]", "[1 )"} {
		err := readErr(t, input)
		assert.Equal(t, merrors.ErrorUnexpectedToken, err.Code, "reading %q", input)
	}
}

func TestReadHashMapUnsupported(t *testing.T) {
	err := readErr(t, "{:a 1}")
	assert.Equal(t, merrors.ErrorUnsupportedForm, err.Code)
	assert.Equal(t, "hash-maps are not supported", err.Message)
}

func TestReadNumberOutOfRange(t *testing.T) {
	for _, input := range []string{"2147483648", "-2147483649", "99999999999999999999"} {
		err := readErr(t, input)
		assert.Equal(t, merrors.ErrorNumberOutOfRange, err.Code, "reading %q", input)
	}
}

func TestReadUnbalancedString(t *testing.T) {
	for _, input := range []string{`"abc`, `"`, `"abc\"`, `("abc`} {
		err := readErr(t, input)
		assert.Equal(t, merrors.ErrorUnbalancedString, err.Code, "reading %q", input)
	}
}

func TestReadRejectsKeywordMarker(t *testing.T) {
	for _, input := range []string{"ʞfoo", ":ʞfoo", "a-ʞ", "(x ʞ)"} {
		err := readErr(t, input)
		assert.Equal(t, merrors.ErrorReservedCharacter, err.Code, "reading %q", input)
	}

	assert.Equal(t, types.String("ʞ"), read(t, `"ʞ"`), "strings may hold the marker")
	assert.Equal(t, types.NewKeyword("foo"), read(t, ":foo"))
}

func TestReadMacroWithoutForm(t *testing.T) {
	err := readErr(t, "'")
	assert.Equal(t, "expected form after ''', got EOF", err.Message)

	err = readErr(t, "^m")
	assert.Equal(t, merrors.ErrorUnexpectedEOF, err.Code)

	err = readErr(t, "(')")
	assert.Equal(t, merrors.ErrorUnexpectedToken, err.Code)
}

func TestReadFormFromTokens(t *testing.T) {
	var tokens []token.Token
	for _, text := range []string{"(", "+", "1", "(", "*", "2", "3", ")", ")"} {
		tokens = append(tokens, token.Token{Text: text})
	}

	r := NewReader(tokens)
	v, err := r.ReadForm()
	require.NoError(t, err)

	assert.Equal(t, types.NewList(
		types.Symbol("+"),
		types.Number(1),
		types.NewList(types.Symbol("*"), types.Number(2), types.Number(3)),
	), v)
	assert.False(t, r.more())
}

func TestReadAtomsInSequence(t *testing.T) {
	r := NewReader([]token.Token{{Text: "12"}, {Text: "x"}})

	first, err := r.readAtom()
	require.NoError(t, err)
	second, err := r.readAtom()
	require.NoError(t, err)

	assert.Equal(t, types.Number(12), first)
	assert.Equal(t, types.Symbol("x"), second)
}

func TestReadContainerRejectsWrongOpener(t *testing.T) {
	r := NewReader([]token.Token{{Text: "x"}, {Text: ")"}})

	_, err := r.readContainer(token.LEFT_PAREN, token.RIGHT_PAREN, "(", ")")

	var cerr *merrors.CompilerError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, merrors.ErrorMismatchedDelimiter, cerr.Code)
}

func TestCursorPastEndPanics(t *testing.T) {
	assert.Panics(t, func() { NewReader(nil).next() })
}

func TestReadAll(t *testing.T) {
	forms, err := ReadAll("test.mal", "(a)\n[b] ; trailing\nc")
	require.NoError(t, err)

	assert.Equal(t, []types.Value{
		types.NewList(types.Symbol("a")),
		types.NewVector(types.Symbol("b")),
		types.Symbol("c"),
	}, forms)
}

func TestReadAllEmpty(t *testing.T) {
	forms, err := ReadAll("test.mal", "; nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestReadAllStopsAtFirstError(t *testing.T) {
	forms, err := ReadAll("test.mal", "(ok)\n(broken")
	require.Error(t, err)

	assert.Equal(t, []types.Value{types.NewList(types.Symbol("ok"))}, forms)

	var cerr *merrors.CompilerError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "test.mal", cerr.Position.Filename)
	assert.Equal(t, 2, cerr.Position.Line)
}
