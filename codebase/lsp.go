package codebase

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/swapcheck/config"
	"github.com/dhamidi/swapcheck/project"
	"github.com/dhamidi/swapcheck/swap"
)

const lsName = "swapcheck"

// LSPServer publishes swap contract violations as diagnostics.
type LSPServer struct {
	codebase *Codebase
	handler  protocol.Handler
	server   *server.Server
	version  string
	opts     []swap.Option
}

// NewLSPServer creates a server. opts are applied after the options read
// from the workspace's .swapcheck.yaml.
func NewLSPServer(version string, opts ...swap.Option) *LSPServer {
	ls := &LSPServer{
		version: version,
		opts:    opts,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := workingDir()
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	cfg, err := config.LoadOrDefault(filepath.Join(rootDir, config.DefaultFile))
	if err != nil {
		log.Warningf("%s, using defaults", err)
		cfg = config.Default()
	}
	proj, err := project.Load(rootDir, cfg)
	if err != nil {
		return nil, err
	}
	opts := append(cfg.ValidatorOptions(), ls.opts...)
	ls.codebase = New(proj, swap.New(opts...))

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	r, err := ls.codebase.ScanAll(context.Background())
	if err != nil {
		log.Warningf("initial scan: %s", err)
		return nil
	}
	for _, fr := range r.Files {
		if !fr.OK() {
			publish(ctx, pathToURI(fr.File), fr)
		}
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	fr := ls.codebase.UpdateFile(context.Background(), path, []byte(params.TextDocument.Text))
	publish(ctx, params.TextDocument.URI, fr)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			fr := ls.codebase.UpdateFile(context.Background(), path, []byte(textChange.Text))
			publish(ctx, params.TextDocument.URI, fr)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	// Unsaved edits are discarded; fall back to what is on disk.
	if fileExists(path) {
		ls.codebase.ScanFile(context.Background(), path)
	} else {
		ls.codebase.RemoveFile(path)
	}
	publish(ctx, params.TextDocument.URI, swap.FileResult{File: path})
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	var fr swap.FileResult
	if params.Text != nil {
		fr = ls.codebase.UpdateFile(context.Background(), path, []byte(*params.Text))
	} else {
		fr = ls.codebase.ScanFile(context.Background(), path)
	}
	publish(ctx, params.TextDocument.URI, fr)
	return nil
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, fr swap.FileResult) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(fr),
	})
}

// diagnostics converts violations to LSP diagnostics. Positions become
// zero-based; a violation without a position is reported on the first line.
func diagnostics(fr swap.FileResult) []protocol.Diagnostic {
	out := []protocol.Diagnostic{}
	for _, v := range fr.Violations {
		pos := protocol.Position{}
		if v.Line > 0 {
			pos.Line = protocol.UInteger(v.Line - 1)
		}
		if v.Column > 0 {
			pos.Character = protocol.UInteger(v.Column - 1)
		}

		message := v.Message
		if v.Kind == swap.KindMissingCounterpart {
			message = v.Message + " (" + v.Type + "." + v.Signature + ")"
		}

		out = append(out, protocol.Diagnostic{
			Range:    protocol.Range{Start: pos, End: pos},
			Severity: severityPtr(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: string(v.Kind)},
			Source:   stringPtr(lsName),
			Message:  message,
		})
	}
	return out
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) protocol.DocumentUri {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
