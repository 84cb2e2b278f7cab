package errors

// Error codes for the mal reader.
// These codes are printed in diagnostics by the REPL, the CLI and the
// language server so the same failure is recognisable everywhere.
//
// Error code ranges:
// E0100-E0199: Reader errors
// E0200-E0299: Tokenizer errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: Input holds no form at all
	ErrorNoForm = "E0100"

	// E0101: Input ended inside a list, vector or reader macro
	ErrorUnexpectedEOF = "E0101"

	// E0102: Closing delimiter without a matching opener
	ErrorUnexpectedToken = "E0102"

	// E0103: Container opened with the wrong delimiter
	ErrorMismatchedDelimiter = "E0103"

	// E0104: Integer literal does not fit in 32 bits
	ErrorNumberOutOfRange = "E0104"

	// E0105: Syntax recognised but not supported (hash-maps)
	ErrorUnsupportedForm = "E0105"

	// E0106: Symbol or keyword contains the reserved keyword marker
	ErrorReservedCharacter = "E0106"

	// E0200: String literal without a closing quote
	ErrorUnbalancedString = "E0200"

	// E0201: Input the tokenizer could not match
	ErrorInvalidInput = "E0201"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorNoForm:
		return "Input contains no form to read"
	case ErrorUnexpectedEOF:
		return "Input ended before the form was complete"
	case ErrorUnexpectedToken:
		return "Closing delimiter does not close anything"
	case ErrorMismatchedDelimiter:
		return "Container does not start with the expected delimiter"
	case ErrorNumberOutOfRange:
		return "Integer literal is outside the signed 32-bit range"
	case ErrorUnsupportedForm:
		return "Form is recognised but not supported by this reader"
	case ErrorReservedCharacter:
		return "Symbol or keyword uses a character reserved by the reader"
	case ErrorUnbalancedString:
		return "String literal is missing its closing quote"
	case ErrorInvalidInput:
		return "Input could not be tokenized"
	default:
		return "Unknown error"
	}
}
