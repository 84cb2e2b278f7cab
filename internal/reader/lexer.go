package reader

import (
	"errors"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"
	merrors "mal/internal/errors"
	"mal/internal/token"
)

type tokenizer struct {
	definition *lexer.StatefulDefinition
	whitespace lexer.TokenType
	comment    lexer.TokenType
}

// space is the Unicode White_Space set; Go's \s alone is ASCII only.
const space = `\s\v\p{Zs}\x{85}\x{2028}\x{2029}`

// Rules are tried in order at each position; the first match wins.
var malTokenizer = sync.OnceValue(func() *tokenizer {
	def := lexer.MustSimple([]lexer.SimpleRule{
		// Separators, covering Unicode white space
		{Name: "Whitespace", Pattern: `[` + space + `,]+`},
		// Comments
		{Name: "Comment", Pattern: `;.*`},

		// Splice must come before the single-character specials
		{Name: "Splice", Pattern: `~@`},
		{Name: "Special", Pattern: "[\\[\\]{}()'`~^@]"},

		// Strings, tolerating a missing closing quote
		{Name: "String", Pattern: `"(?:\\.|[^\\"])*"?`},

		// Numbers, symbols, keywords
		{Name: "Atom", Pattern: `[^` + space + `\[\]{}('"` + "`" + `,;)]+`},
	})

	symbols := def.Symbols()
	return &tokenizer{
		definition: def,
		whitespace: symbols["Whitespace"],
		comment:    symbols["Comment"],
	}
})

// Tokenize splits source into tokens. Separators and comments are dropped.
func Tokenize(source string) ([]token.Token, error) {
	return tokenize("", source)
}

func tokenize(filename, source string) ([]token.Token, error) {
	t := malTokenizer()

	lex, err := t.definition.LexString(filename, source)
	if err != nil {
		return nil, merrors.InvalidInput(err.Error(), token.Position{Filename: filename, Line: 1, Column: 1})
	}

	lexed, err := lexer.ConsumeAll(lex)
	if err != nil {
		var lerr *lexer.Error
		if errors.As(err, &lerr) {
			return nil, merrors.InvalidInput(lerr.Msg, convertPosition(lerr.Pos))
		}
		return nil, merrors.InvalidInput(err.Error(), token.Position{Filename: filename, Line: 1, Column: 1})
	}

	tokens := make([]token.Token, 0, len(lexed))
	for _, tok := range lexed {
		if tok.EOF() || tok.Type == t.whitespace || tok.Type == t.comment || tok.Value == "" {
			continue
		}
		tokens = append(tokens, token.Token{
			Text: tok.Value,
			Pos:  convertPosition(tok.Pos),
		})
	}
	return tokens, nil
}

func convertPosition(pos lexer.Position) token.Position {
	return token.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
