// Where: cmd/dockfresh/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"

	"github.com/poruru/dockfresh/internal/app"
	"github.com/poruru/dockfresh/internal/engine"
	"github.com/poruru/dockfresh/internal/execute"
	"github.com/poruru/dockfresh/internal/interaction"
	"github.com/poruru/dockfresh/internal/preflight"
	"github.com/poruru/dockfresh/internal/purge"
	"github.com/poruru/dockfresh/internal/sysd"
	"github.com/poruru/dockfresh/internal/ui"
)

var (
	userHomeDir     = os.UserHomeDir
	newEngineClient = engine.NewClient
)

// buildDependencies constructs all runtime dependencies required by the
// CLI. The SDK client is built lazily against the daemon socket, so
// construction succeeds even while the daemon is down; that is exactly
// the state a reset has to recover from.
func buildDependencies() (app.Dependencies, io.Closer, error) {
	home, err := userHomeDir()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	api, err := newEngineClient()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	runner := execute.ExecRunner{}
	console := ui.New(os.Stdout)
	deps := app.Dependencies{
		Out:       os.Stdout,
		Home:      home,
		Engine:    app.NewEngineClient(api, sysd.NewController(runner)),
		Confirmer: interaction.NewStdConfirmer(),
		Prompter:  interaction.HuhPrompter{},
		Remover:   purge.HostRemover{Runner: runner},
		Runner:    runner,
		Preflight: preflight.DefaultDeps(runner, console.Info),
	}

	return deps, asCloser(api), nil
}

// asCloser attempts to cast the engine API to an io.Closer.
// Returns nil if the client does not implement the Closer interface.
func asCloser(api engine.API) io.Closer {
	if closer, ok := api.(io.Closer); ok {
		return closer
	}
	return nil
}
