package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lecturekit"
	"github.com/fwojciec/lecturekit/fs"
	"github.com/fwojciec/lecturekit/goquery"
	"github.com/fwojciec/lecturekit/html"
	lkslog "github.com/fwojciec/lecturekit/slog"
	"github.com/fwojciec/lecturekit/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", FormatError(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Store overrides the filesystem store. Set before calling Run().
	Store lecturekit.Store
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lecturekit"),
		kong.Description("Move inline CSS, JavaScript and images of HTML lecture pages into separate files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lecturekit --help' to see available commands")
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

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Config, err = yaml.LoadConfig(cli.Config)
	if err != nil {
		return err
	}

	store := m.Store
	if store == nil {
		store = fs.NewStore(
			fs.WithCreateDirs(cli.Split.CreateDirs),
			fs.WithBackup(cli.Split.Backup),
		)
	}
	deps.Store = lkslog.NewLoggingStore(store, deps.Logger)
	deps.Locator = lkslog.NewLoggingLocator(
		html.NewLocator(deps.Config.Split.Stylesheet, deps.Config.Split.Script),
		deps.Logger,
	)
	deps.Inspector = goquery.NewInspector()

	return kongCtx.Run(deps)
}

// FormatError returns the message shown to the user for err.
// Application errors show their message; anything else shows in full.
func FormatError(err error) string {
	if lecturekit.ErrorCode(err) == lecturekit.EINTERNAL {
		return err.Error()
	}
	return lecturekit.ErrorMessage(err)
}
