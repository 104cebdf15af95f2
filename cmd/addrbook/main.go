package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/smileynet/addrbook/internal/command"
	"github.com/smileynet/addrbook/internal/config"
	"github.com/smileynet/addrbook/internal/contact"
	"github.com/smileynet/addrbook/internal/logging"
	"github.com/smileynet/addrbook/internal/repl"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for addrbook.
// Running with no arguments starts the interactive prompt.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version." short:"V"`
	Plain    bool             `help:"Force the line-based prompt even if the terminal supports the TUI."`
	Prompt   string           `help:"Prompt shown before each input line."`
	LogLevel string           `help:"Log level: debug, info, warn, error." name:"log-level"`
	Config   string           `help:"Extra config file layered over user and project config." type:"path"`
}

// Run executes the interactive session.
func (c *CLI) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.run(ctx, os.Stdin, os.Stdout, os.Stderr)
}

// run wires config, logging, store, and dispatcher into a session.
func (c *CLI) run(ctx context.Context, in io.Reader, out, errW io.Writer) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return &setupError{err: err}
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, errW)

	book := contact.NewAddressBook()
	dispatcher := command.New(book, command.WithLogger(logger))

	session := repl.NewSession(repl.SessionOptions{
		In:         in,
		Out:        out,
		Prompt:     cfg.REPL.Prompt,
		ForcePlain: cfg.REPL.Plain,
		Hints:      dispatcher.Triggers(),
		Logger:     logger,
		Dispatcher: dispatcher,
	})
	return session.Run(ctx)
}

// loadConfig loads layered config from user, project, and flag paths,
// then applies env and flag overrides.
func (c *CLI) loadConfig() (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/addrbook/config.yaml"),
		".addrbook/config.yaml",
	}
	if c.Config != "" {
		paths = append(paths, c.Config)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	// Apply CLI flag overrides.
	if c.Plain {
		cfg.REPL.Plain = true
	}
	if c.Prompt != "" {
		cfg.REPL.Prompt = c.Prompt
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupError marks failures that happen before the session starts.
type setupError struct {
	err error
}

func (e *setupError) Error() string { return e.err.Error() }

func (e *setupError) Unwrap() error { return e.err }

const (
	exitSuccess = 0
	exitSession = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *setupError
	if errors.As(err, &se) {
		return exitSetup
	}
	return exitSession
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("addrbook"),
		kong.Description("Interactive in-memory address book."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
