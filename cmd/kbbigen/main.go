package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"kbbiwords"
	"kbbiwords/fs"
	kbbihttp "kbbiwords/http"
	kbbislog "kbbiwords/slog"

	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kbbigen"),
		kong.Description("Generate a filtered KBBI word list as a JSON file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags. Unlike fetch-style tools, running with no
	// arguments is a valid invocation: every flag has a default.
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	settings, err := ResolveSettings(cli)
	if err != nil {
		return err
	}

	// Wire dependencies
	var fetcher kbbiwords.Fetcher = kbbihttp.NewFetcher(kbbihttp.WithTimeout(settings.Timeout))
	var writer kbbiwords.DocumentWriter = fs.NewWriter()

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fetcher = kbbislog.NewLoggingFetcher(fetcher, logger)
		writer = kbbislog.NewLoggingWriter(writer, logger)
	}
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Fetcher: fetcher,
		Writer:  writer,
	}

	cmd := &GenerateCmd{
		URL:    settings.URL,
		Output: settings.Output,
		MinLen: settings.MinLen,
		MaxLen: settings.MaxLen,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL     string `help:"Word list source URL (default: the KBBI list on GitHub)"`
	Output  string `short:"o" help:"Output JSON file path (default: kbbiWords.json)"`
	Timeout int    `short:"t" help:"Fetch timeout in seconds (default: 30)"`
	MinLen  int    `default:"4" help:"Minimum word length in characters (inclusive)"`
	MaxLen  int    `default:"6" help:"Maximum word length in characters (inclusive)"`
	Config  string `short:"c" help:"Optional YAML config file" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging to stderr"`
}
