package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"mal/internal/reader"
)

// SemanticTokenTypes is the legend advertised to clients
var SemanticTokenTypes = []string{
	"variable",
	"function",
	"keyword",
	"enumMember",
	"number",
	"string",
	"macro",
}

// SemanticTokenModifiers is the modifier legend advertised to clients
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// MalHandler implements the LSP server handlers for mal source files
type MalHandler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
	log     commonlog.Logger
}

// NewMalHandler creates and returns a new MalHandler instance
func NewMalHandler() *MalHandler {
	return &MalHandler{
		content: make(map[protocol.DocumentUri]string),
		log:     commonlog.GetLogger("mal.lsp"),
	}
}

// Initialize advertises the server's capabilities
func (h *MalHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *MalHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

func (h *MalHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	return nil
}

func (h *MalHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen stores the opened text and publishes its diagnostics
func (h *MalHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Infof("opened %s", params.TextDocument.URI)

	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange replaces the stored text. Only full-document changes
// are expected since that is the sync kind advertised.
func (h *MalHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.log.Debugf("changed %s", params.TextDocument.URI)

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			h.update(ctx, params.TextDocument.URI, c.Text)
		case *protocol.TextDocumentContentChangeEventWhole:
			h.update(ctx, params.TextDocument.URI, c.Text)
		default:
			h.log.Warningf("ignoring incremental change to %s", params.TextDocument.URI)
		}
	}
	return nil
}

func (h *MalHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.content, params.TextDocument.URI)
	h.mu.Unlock()
	return nil
}

// TextDocumentSemanticTokensFull classifies every token of the document
func (h *MalHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	source, err := h.source(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens, err := reader.Tokenize(source)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize %s: %w", params.TextDocument.URI, err)
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(tokens)),
	}, nil
}

func (h *MalHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	h.mu.Lock()
	h.content[uri] = text
	h.mu.Unlock()

	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}

	_, readErr := reader.ReadAll(path, text)
	diagnostics := ConvertReadError(readErr)
	h.log.Debugf("%s: %d diagnostic(s)", uri, len(diagnostics))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// source returns the open document text, falling back to the file on disk
func (h *MalHandler) source(uri protocol.DocumentUri) (string, error) {
	h.mu.RLock()
	text, ok := h.content[uri]
	h.mu.RUnlock()
	if ok {
		return text, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	if u.Scheme != "" && u.Scheme != "file" {
		return "", fmt.Errorf("unsupported URI scheme %q", u.Scheme)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
