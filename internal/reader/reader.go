package reader

import (
	"strconv"
	"strings"

	merrors "mal/internal/errors"
	"mal/internal/token"
	"mal/internal/types"
)

// ErrNoForm is returned by ReadStr when the input holds only separators
// and comments.
var ErrNoForm error = merrors.NoForm(token.Position{Line: 1, Column: 1})

// macros maps reader-macro tokens to the symbol they expand to.
var macros = map[token.Class]string{
	token.QUOTE:          "quote",
	token.QUASIQUOTE:     "quasiquote",
	token.UNQUOTE:        "unquote",
	token.SPLICE_UNQUOTE: "splice-unquote",
	token.DEREF:          "deref",
}

// Reader is a cursor over the tokens of one parse. It is not shared between
// parses.
type Reader struct {
	tokens   []token.Token
	position int
}

func NewReader(tokens []token.Token) *Reader {
	return &Reader{tokens: tokens}
}

// ReadStr reads the first form of source. Tokens after it are ignored.
func ReadStr(source string) (types.Value, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}

	r := NewReader(tokens)
	if !r.more() {
		return nil, ErrNoForm
	}
	return r.ReadForm()
}

// ReadAll reads every top-level form of a file, stopping at the first error.
func ReadAll(filename, source string) ([]types.Value, error) {
	tokens, err := tokenize(filename, source)
	if err != nil {
		return nil, err
	}

	r := NewReader(tokens)
	var forms []types.Value
	for r.more() {
		form, err := r.ReadForm()
		if err != nil {
			return forms, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// ReadForm reads one complete form at the cursor.
func (r *Reader) ReadForm() (types.Value, error) {
	tok, ok := r.peek()
	if !ok {
		return nil, ErrNoForm
	}

	class := tok.Class()
	switch class {
	case token.LEFT_PAREN:
		elems, err := r.readContainer(token.LEFT_PAREN, token.RIGHT_PAREN, "(", ")")
		if err != nil {
			return nil, err
		}
		return types.NewList(elems...), nil
	case token.LEFT_BRACKET:
		elems, err := r.readContainer(token.LEFT_BRACKET, token.RIGHT_BRACKET, "[", "]")
		if err != nil {
			return nil, err
		}
		return types.NewVector(elems...), nil
	case token.LEFT_BRACE:
		r.next()
		return nil, merrors.UnsupportedForm("hash-maps", tok)
	case token.RIGHT_PAREN, token.RIGHT_BRACKET, token.RIGHT_BRACE:
		r.next()
		return nil, merrors.UnexpectedToken(tok)
	case token.META:
		return r.readWithMeta()
	}

	if name, ok := macros[class]; ok {
		return r.readMacro(name)
	}
	return r.readAtom()
}

// readContainer reads the elements between opener and closer.
func (r *Reader) readContainer(opener, closer token.Class, openText, closeText string) ([]types.Value, error) {
	start := r.next()
	if start.Class() != opener {
		return nil, merrors.MismatchedDelimiter(openText, start)
	}

	var elems []types.Value
	for {
		tok, ok := r.peek()
		if !ok {
			return nil, merrors.UnexpectedEOF(closeText, start)
		}
		if tok.Class() == closer {
			r.next()
			return elems, nil
		}

		form, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, form)
	}
}

// readMacro expands 'x into (quote x) and friends.
func (r *Reader) readMacro(name string) (types.Value, error) {
	macro := r.next()
	form, err := r.readOperand(macro)
	if err != nil {
		return nil, err
	}
	return types.NewList(types.Symbol(name), form), nil
}

// readWithMeta expands ^m x into (with-meta x m).
func (r *Reader) readWithMeta() (types.Value, error) {
	caret := r.next()
	meta, err := r.readOperand(caret)
	if err != nil {
		return nil, err
	}
	form, err := r.readOperand(caret)
	if err != nil {
		return nil, err
	}
	return types.NewList(types.Symbol("with-meta"), form, meta), nil
}

func (r *Reader) readOperand(macro token.Token) (types.Value, error) {
	if !r.more() {
		return nil, merrors.MissingForm(macro)
	}
	return r.ReadForm()
}

// readAtom reads a number, string, constant, keyword or symbol.
func (r *Reader) readAtom() (types.Value, error) {
	tok := r.next()
	class := tok.Class()

	if class != token.STRING && strings.Contains(tok.Text, types.KeywordPrefix) {
		return nil, merrors.ReservedCharacter(types.KeywordPrefix, tok)
	}

	switch class {
	case token.NUMBER:
		n, err := strconv.ParseInt(tok.Text, 10, 32)
		if err != nil {
			return nil, merrors.NumberOutOfRange(tok)
		}
		return types.Number(n), nil
	case token.STRING:
		s, ok := unescape(tok.Text)
		if !ok {
			return nil, merrors.UnbalancedString(tok)
		}
		return types.String(s), nil
	case token.CONSTANT:
		switch tok.Text {
		case "true":
			return types.Boolean(true), nil
		case "false":
			return types.Boolean(false), nil
		}
		return types.Nil{}, nil
	case token.KEYWORD:
		return types.NewKeyword(tok.Text[1:]), nil
	}
	return types.Symbol(tok.Text), nil
}

// unescape decodes a string literal token. It reports false when the closing
// quote is missing.
func unescape(text string) (string, bool) {
	var b strings.Builder
	for i := 1; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\\':
			i++
			if i >= len(text) {
				return "", false
			}
			if text[i] == 'n' {
				b.WriteByte('\n')
			} else {
				b.WriteByte(text[i])
			}
		case '"':
			return b.String(), i == len(text)-1
		default:
			b.WriteByte(c)
		}
	}
	return "", false
}

func (r *Reader) more() bool {
	return r.position < len(r.tokens)
}

func (r *Reader) peek() (token.Token, bool) {
	if !r.more() {
		return token.Token{}, false
	}
	return r.tokens[r.position], true
}

func (r *Reader) next() token.Token {
	if !r.more() {
		panic("reader: cursor advanced past the end of its tokens")
	}
	r.position++
	return r.tokens[r.position-1]
}
