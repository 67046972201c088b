package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"healthhub-directory/internal/infrastructure/feed"

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
type Main struct {
	// Feed overrides the HTTP feed client built from --source.
	Feed feed.Client

	// Placeholder is the image base used for doctors without a photo.
	Placeholder string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Placeholder: "/placeholder.svg",
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Placeholder: m.Placeholder,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("directoryctl"),
		kong.Description("Query the HealthHub doctor directory from the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars(cliVars),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'directoryctl --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Feed = m.Feed
	if deps.Feed == nil {
		deps.Feed = feed.NewHTTPClient(cli.Source, feed.WithTimeout(cli.Timeout))
	}

	return kongCtx.Run(deps)
}
