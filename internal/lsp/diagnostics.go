package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"
	merrors "mal/internal/errors"
)

// ConvertReadError turns a reader failure into LSP diagnostics. A nil error
// gives an empty, non-nil slice so clients clear stale markers.
func ConvertReadError(err error) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if err == nil {
		return diagnostics
	}

	var cerr *merrors.CompilerError
	if !errors.As(err, &cerr) {
		return append(diagnostics, protocol.Diagnostic{
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("mal-reader"),
			Message:  err.Error(),
		})
	}

	length := cerr.Length
	if length <= 0 {
		length = 1
	}

	line := uint32(max(cerr.Position.Line-1, 0))  // Convert to 0-based indexing
	char := uint32(max(cerr.Position.Column-1, 0)) // Convert to 0-based indexing

	message := cerr.Message
	for _, note := range cerr.Notes {
		message += "\nnote: " + note
	}

	return append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: char},
			End:   protocol.Position{Line: line, Character: char + uint32(length)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: cerr.Code},
		Source:   ptrString("mal-reader"),
		Message:  message,
	})
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
