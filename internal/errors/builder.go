package errors

import "mal/internal/token"

// ErrorBuilder provides a fluent interface for creating diagnostics
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos token.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp sets help text for the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the constructed error
func (b *ErrorBuilder) Build() *CompilerError {
	err := b.err
	return &err
}

// Reader error constructors

func NoForm(pos token.Position) *CompilerError {
	return NewError(ErrorNoForm, "expected form, got EOF", pos).
		WithLength(0).
		Build()
}

// UnexpectedEOF reports input that ended while waiting for closer.
func UnexpectedEOF(closer string, opened token.Token) *CompilerError {
	return NewError(ErrorUnexpectedEOF, "expected '"+closer+"', got EOF", opened.Pos).
		WithLength(len(opened.Text)).
		WithNote("unclosed '" + opened.Text + "' starts here").
		WithSuggestion("add '" + closer + "' at the end of the input").
		Build()
}

// MissingForm reports a reader macro with nothing after it.
func MissingForm(macro token.Token) *CompilerError {
	return NewError(ErrorUnexpectedEOF, "expected form after '"+macro.Text+"', got EOF", macro.Pos).
		WithLength(len(macro.Text)).
		Build()
}

func UnexpectedToken(tok token.Token) *CompilerError {
	return NewError(ErrorUnexpectedToken, "unexpected '"+tok.Text+"'", tok.Pos).
		WithLength(len(tok.Text)).
		WithSuggestion("remove it or add the matching opening delimiter").
		Build()
}

func MismatchedDelimiter(expected string, tok token.Token) *CompilerError {
	return NewError(ErrorMismatchedDelimiter, "expected '"+expected+"', got '"+tok.Text+"'", tok.Pos).
		WithLength(len(tok.Text)).
		Build()
}

func NumberOutOfRange(tok token.Token) *CompilerError {
	return NewError(ErrorNumberOutOfRange, "number out of range: "+tok.Text, tok.Pos).
		WithLength(len(tok.Text)).
		WithNote("numbers are signed 32-bit integers").
		Build()
}

func UnsupportedForm(what string, tok token.Token) *CompilerError {
	return NewError(ErrorUnsupportedForm, what+" are not supported", tok.Pos).
		WithLength(len(tok.Text)).
		Build()
}

func ReservedCharacter(char string, tok token.Token) *CompilerError {
	return NewError(ErrorReservedCharacter, "reserved character '"+char+"' in '"+tok.Text+"'", tok.Pos).
		WithLength(len([]rune(tok.Text))).
		WithNote("'" + char + "' marks keywords internally and cannot appear in symbols or keywords").
		Build()
}

func UnbalancedString(tok token.Token) *CompilerError {
	return NewError(ErrorUnbalancedString, "expected '\"', got EOF", tok.Pos).
		WithLength(len(tok.Text)).
		WithHelp("strings end with an unescaped '\"'").
		Build()
}

func InvalidInput(message string, pos token.Position) *CompilerError {
	return NewError(ErrorInvalidInput, message, pos).Build()
}
