package lsp

import (
	"strings"

	"mal/internal/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// definers are the symbols whose following symbol is a declaration.
var definers = map[string]bool{
	"def!":      true,
	"defmacro!": true,
}

func collectSemanticTokens(tokens []token.Token) []SemanticToken {
	var out []SemanticToken

	var prev token.Token
	for _, tok := range tokens {
		tokenType, modifiers, ok := classify(tok, prev)
		prev = tok
		if !ok || strings.Contains(tok.Text, "\n") {
			continue
		}

		out = append(out, SemanticToken{
			Line:           uint32(tok.Pos.Line - 1),   // LSP uses 0-based line numbers
			StartChar:      uint32(tok.Pos.Column - 1), // LSP uses 0-based column numbers
			Length:         uint32(tok.End().Column - tok.Pos.Column),
			TokenType:      indexOf(tokenType, SemanticTokenTypes),
			TokenModifiers: modifiers,
		})
	}
	return out
}

// classify maps a token to a legend entry. Delimiters are not reported.
func classify(tok, prev token.Token) (string, int, bool) {
	switch tok.Class() {
	case token.NUMBER:
		return "number", 0, true
	case token.STRING:
		return "string", 0, true
	case token.KEYWORD:
		return "enumMember", modifier("readonly"), true
	case token.CONSTANT:
		return "keyword", modifier("readonly"), true
	case token.QUOTE, token.QUASIQUOTE, token.UNQUOTE, token.SPLICE_UNQUOTE, token.DEREF, token.META:
		return "macro", 0, true
	case token.SYMBOL:
		if prev.Class() == token.LEFT_PAREN {
			return "function", 0, true
		}
		if prev.Class() == token.SYMBOL && definers[prev.Text] {
			return "variable", modifier("declaration"), true
		}
		return "variable", 0, true
	}
	return "", 0, false
}

// encodeSemanticTokens encodes tokens into the LSP wire format using
// delta-line, delta-start compression
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}
	return data
}

func modifier(name string) int {
	return 1 << indexOf(name, SemanticTokenModifiers)
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
