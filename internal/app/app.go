// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/poruru/dockfresh/internal/config"
	"github.com/poruru/dockfresh/internal/execute"
	"github.com/poruru/dockfresh/internal/interaction"
	"github.com/poruru/dockfresh/internal/preflight"
	"github.com/poruru/dockfresh/internal/purge"
	"github.com/poruru/dockfresh/internal/ui"
	"github.com/poruru/dockfresh/internal/version"
)

// CLI defines the command-line interface structure parsed by Kong.
// Destructive commands take no flags: the interactive confirmation is
// the only authorization mechanism, so there is nothing to bypass.
type CLI struct {
	Reset      ResetCmd      `cmd:"" help:"Stop Docker, wipe all engine state, and restart fresh"`
	Clean      CleanCmd      `cmd:"" help:"Remove unused resources and per-user caches, keep engine data"`
	Status     StatusCmd     `cmd:"" help:"Show engine state and leftover resources"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type (
	ResetCmd   struct{}
	CleanCmd   struct{}
	StatusCmd  struct{}
	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns the process exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	// Load .env if present in the current directory.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	deps = withDefaults(deps, out)

	// Handle no arguments: offer the mode selection menu.
	if len(args) == 0 {
		return runModeSelector(deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"reset":           runReset,
		"clean":           runClean,
		"status":          runStatus,
		"completion bash": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":  func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	return 1, false
}

// withDefaults fills the injectable seams that were left empty so command
// handlers can rely on every dependency being present.
func withDefaults(deps Dependencies, out io.Writer) Dependencies {
	if deps.Runner == nil {
		deps.Runner = execute.ExecRunner{}
	}
	if deps.Confirmer == nil {
		deps.Confirmer = interaction.NewStdConfirmer()
	}
	if deps.Remover == nil {
		deps.Remover = purge.HostRemover{Runner: deps.Runner}
	}
	if deps.Sleep == nil {
		deps.Sleep = time.Sleep
	}
	if deps.Preflight.Geteuid == nil {
		console := ui.New(out)
		deps.Preflight = preflight.DefaultDeps(deps.Runner, console.Info)
	}
	return deps
}

func resolveHome(deps Dependencies) (string, error) {
	if deps.Home != "" {
		return deps.Home, nil
	}
	return os.UserHomeDir()
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	fmt.Fprintln(out, version.GetLongVersion())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
