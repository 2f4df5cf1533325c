package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/japaniel/anagramfinder/pkg/anagram"
	"github.com/japaniel/anagramfinder/pkg/config"
	"github.com/japaniel/anagramfinder/pkg/source"
)

const usage = "Usage: anagramfinder [flags] <dictionary file>"

const (
	exitFailure = 1 // usage, unreadable input
	exitConfig  = 2 // invalid config, capacity exceeded
)

// exitError carries the process exit code for a failed run. An empty
// Message means the reason was already printed.
type exitError struct {
	Code    int
	Message string
}

func (e *exitError) Error() string { return e.Message }

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	if err != nil {
		code := exitFailure
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}
}

// run parses args, finds the anagrams and writes the report to stdout.
// Diagnostics and logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("anagramfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stdout, usage)
		fs.PrintDefaults()
	}

	defaults := config.Default()
	configFlag := fs.String("config", "", "Path to a YAML config file")
	maxWordsFlag := fs.Int("max-words", defaults.MaxWords, "Maximum number of words to store")
	maxLenFlag := fs.Int("max-len", defaults.MaxWordLen, "Maximum length of a word")
	inputFlag := fs.String("input", defaults.Input, "Input kind: 'lines', 'sqlite' or 'html'")
	formatFlag := fs.String("format", defaults.Format, "Report format: 'text' or 'json'")
	logLevelFlag := fs.String("log-level", defaults.LogLevel, "Log level: 'debug', 'info', 'warn', 'error'")
	logFormatFlag := fs.String("log-format", defaults.LogFormat, "Log format: 'text' or 'json'")
	versionFlag := fs.Bool("version", false, "Print the version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &exitError{Code: exitFailure}
	}
	if *versionFlag {
		fmt.Fprintln(stdout, anagram.Version())
		return nil
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stdout, usage)
		return &exitError{Code: exitFailure}
	}
	path := fs.Arg(0)

	cfg := defaults
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return &exitError{Code: exitConfig, Message: fmt.Sprintf("Error: %v", err)}
		}
		cfg = loaded
	}
	// Flags given on the command line win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-words":
			cfg.MaxWords = *maxWordsFlag
		case "max-len":
			cfg.MaxWordLen = *maxLenFlag
		case "input":
			cfg.Input = *inputFlag
		case "format":
			cfg.Format = *formatFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		return &exitError{Code: exitConfig, Message: fmt.Sprintf("Error: %v", err)}
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	rc, err := source.Open(ctx, source.Kind(cfg.Input), path)
	if err != nil {
		logger.Debug("open input failed", "path", path, "input", cfg.Input, "err", err)
		if errors.Is(err, source.ErrNotFound) {
			return &exitError{Code: exitFailure, Message: fmt.Sprintf("Error: File '%s' not found.", path)}
		}
		return &exitError{Code: exitFailure, Message: fmt.Sprintf("Error: %v", err)}
	}
	res, stats, err := anagram.Find(rc, cfg.Limits())
	rc.Close()
	if err != nil {
		code := exitFailure
		if errors.Is(err, anagram.ErrCapacity) {
			code = exitConfig
		}
		return &exitError{Code: code, Message: fmt.Sprintf("Error: %v", err)}
	}
	logger.Debug("word list loaded",
		"path", path,
		"input", cfg.Input,
		"lines", stats.Lines,
		"invalid", stats.Invalid,
		"short", stats.Short,
		"words", stats.Words,
		"buckets", stats.Buckets,
	)
	logger.Debug("anagram groups found", "max", res.Max, "groups", len(res.Groups))

	write := anagram.WriteText
	if cfg.Format == config.FormatJSON {
		write = anagram.WriteJSON
	}
	if err := write(stdout, res); err != nil {
		return &exitError{Code: exitFailure, Message: fmt.Sprintf("Error: write report: %v", err)}
	}
	return nil
}
