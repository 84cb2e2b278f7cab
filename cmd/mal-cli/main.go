// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	merrors "mal/internal/errors"
	"mal/internal/printer"
	"mal/internal/reader"
)

func main() {
	quiet := flag.Bool("q", false, "only report errors")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: mal-cli [-q] [-v N] <file.mal>...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	commonlog.Configure(*verbosity, nil)

	startTime := time.Now()
	failed := 0
	for _, path := range flag.Args() {
		if err := checkFile(os.Stdout, path, *quiet); err != nil {
			failed++
		}
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		color.Red("Reading failed for %d of %d file(s) after %s", failed, flag.NArg(), duration)
		os.Exit(1)
	}
	color.Green("Successfully read %d file(s) in %s", flag.NArg(), duration)
}

// checkFile reads every form of path and prints it, or prints the first
// diagnostic.
func checkFile(out io.Writer, path string, quiet bool) error {
	log := commonlog.GetLogger("mal.cli")

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return err
	}

	forms, err := reader.ReadAll(path, string(source))
	log.Debugf("%s: read %d form(s)", path, len(forms))

	if !quiet {
		for _, form := range forms {
			fmt.Fprintln(out, printer.PrStr(form, true))
		}
	}

	if err != nil {
		var cerr *merrors.CompilerError
		if errors.As(err, &cerr) {
			fmt.Fprint(out, merrors.NewErrorReporter(path, string(source)).FormatError(*cerr))
		} else {
			fmt.Fprintf(out, "%s: %v\n", path, err)
		}
		return err
	}
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
