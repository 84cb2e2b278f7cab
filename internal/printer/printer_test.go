package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mal/internal/reader"
	"mal/internal/types"
)

func TestPrStr(t *testing.T) {
	tests := []struct {
		value    types.Value
		expected string
	}{
		{types.Number(42), "42"},
		{types.Number(-5), "-5"},
		{types.Symbol("abc"), "abc"},
		{types.NewKeyword("foo"), ":foo"},
		{types.Boolean(true), "true"},
		{types.Boolean(false), "false"},
		{types.Nil{}, "nil"},
		{types.NewError("expected ')', got EOF"), "expected ')', got EOF"},
		{types.NewList(), "()"},
		{types.NewVector(), "[]"},
		{types.NewList(types.Symbol("+"), types.Number(1), types.NewVector(types.Number(2), types.Number(3))), "(+ 1 [2 3])"},
		{types.NewVector(types.NewList(), types.NewVector()), "[() []]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PrStr(tt.value, true))
	}
}

func TestPrStrKeywordHidesPrefix(t *testing.T) {
	out := PrStr(types.NewKeyword("foo"), true)

	assert.Equal(t, ":foo", out)
	assert.NotContains(t, out, types.KeywordPrefix)
}

func TestPrStrStrings(t *testing.T) {
	s := types.String("say \"hi\"\n\\")

	assert.Equal(t, `"say \"hi\"\n\\"`, PrStr(s, true))
	assert.Equal(t, "say \"hi\"\n\\", PrStr(s, false))
	assert.Equal(t, `("a" b)`, PrStr(types.NewList(types.String("a"), types.Symbol("b")), true))
}

func TestRoundTripAtoms(t *testing.T) {
	atoms := []string{"1", "-5", "0", "x", ":foo", "true", "false", "nil", `"a\nb"`, `"q\"q"`, "+", "-"}

	for _, atom := range atoms {
		first, err := reader.ReadStr(atom)
		require.NoError(t, err)

		again, err := reader.ReadStr(PrStr(first, true))
		require.NoError(t, err)

		assert.True(t, types.Equal(first, again), "round trip of %q", atom)
		assert.Equal(t, atom, PrStr(again, true))
	}
}

func TestPrintIsIdempotent(t *testing.T) {
	trees := []types.Value{
		types.NewList(types.Symbol("def!"), types.Symbol("x"), types.NewVector(types.Number(1), types.NewKeyword("k"), types.Nil{})),
		types.NewVector(),
		types.NewList(types.NewList(types.NewList())),
		types.NewVector(types.String("s p a c e"), types.Boolean(false), types.Number(-2147483648)),
	}

	for _, tree := range trees {
		printed := PrStr(tree, true)

		reread, err := reader.ReadStr(printed)
		require.NoError(t, err)

		assert.Equal(t, printed, PrStr(reread, true))
		assert.True(t, types.Equal(tree, reread))
	}
}
