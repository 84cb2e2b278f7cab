// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	"mal/internal/config"
	merrors "mal/internal/errors"
	"mal/internal/printer"
	"mal/internal/reader"
	"mal/internal/types"
)

// SourceName labels diagnostics for interactive input.
const SourceName = "<repl>"

// MaxLineBytes bounds a single input line.
const MaxLineBytes = 64 << 20

// Read parses one line. Failures come back as an Error value.
func Read(line string) types.Value {
	v, err := reader.ReadStr(line)
	if err != nil {
		return types.Error{Message: err.Error()}
	}
	return v
}

// Eval returns its argument unchanged.
func Eval(v types.Value) types.Value {
	return v
}

func Print(v types.Value) string {
	return printer.PrStr(v, true)
}

// Rep runs one line through Read, Eval and Print.
func Rep(line string) string {
	return Print(Eval(Read(line)))
}

// Start prompts for lines on in and writes results to out until in is
// exhausted, which is reported as "Error: EOF". Malformed input is reported
// and the loop continues.
func Start(in io.Reader, out io.Writer, cfg config.Config) error {
	log := commonlog.GetLogger("mal.repl")
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineBytes)
	prompt := color.New(color.FgGreen).SprintFunc()

	for {
		fmt.Fprint(out, prompt(cfg.Prompt))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				return fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintf(out, "Error: %v\n", io.EOF)
			log.Debug("input closed")
			return nil
		}

		line := scanner.Text()
		log.Debugf("read line of %d bytes", len(line))

		fmt.Fprint(out, rep(line, cfg))
	}
}

// rep is the interactive form of Rep. It runs the same read, Eval and print
// steps but renders read failures through the error reporter instead of
// printing the Error value, honors cfg.Readably and cfg.Dump, and prints
// nothing for a line without a form.
func rep(line string, cfg config.Config) string {
	v, err := reader.ReadStr(line)
	if errors.Is(err, reader.ErrNoForm) {
		return ""
	}

	var cerr *merrors.CompilerError
	if errors.As(err, &cerr) {
		return merrors.NewErrorReporter(SourceName, line).FormatError(*cerr)
	}
	if err != nil {
		return fmt.Sprintf("Error: %v\n", err)
	}

	var dump string
	if cfg.Dump {
		dump = spew.Sdump(v)
	}
	return dump + printer.PrStr(Eval(v), cfg.Readably) + "\n"
}
