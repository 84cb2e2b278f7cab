// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"mal/internal/config"
	"mal/internal/lsp"
)

const lsName = "mal" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	configPath := flag.String("config", ".malrc.yml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		cfg = config.Default()
	}

	// Stdout carries the protocol, so logs go to stderr or the configured file
	commonlog.Configure(max(cfg.Log.Verbosity, 1), cfg.LogFile())
	log := commonlog.GetLogger("mal.lsp")
	if err != nil {
		log.Warningf("using default config: %s", err)
	}

	malHandler := lsp.NewMalHandler()

	handler = protocol.Handler{
		Initialize:                     malHandler.Initialize,
		Initialized:                    malHandler.Initialized,
		Shutdown:                       malHandler.Shutdown,
		SetTrace:                       malHandler.SetTrace,
		TextDocumentDidOpen:            malHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           malHandler.TextDocumentDidClose,
		TextDocumentDidChange:          malHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: malHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting mal LSP server %s", version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("error running mal LSP server: %s", err)
		os.Exit(1)
	}
}
