// Where: internal/app/selector.go
// What: Interactive mode selection for the bare invocation.
// Why: Let the operator pick a mode without memorizing subcommands.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/poruru/dockfresh/internal/interaction"
	"github.com/poruru/dockfresh/internal/meta"
)

// runModeSelector handles the case when dockfresh is invoked without
// arguments. It requires a terminal; scripted callers must name a
// subcommand so a destructive mode is never entered by accident.
func runModeSelector(deps Dependencies, out io.Writer) int {
	if !isTerminal(os.Stdin) {
		fmt.Fprintf(out, "no terminal attached: run `%s reset`, `%s clean`, or `%s status` explicitly\n",
			meta.Slug, meta.Slug, meta.Slug)
		return 1
	}

	prompter := deps.Prompter
	if prompter == nil {
		prompter = interaction.HuhPrompter{}
	}

	choice, err := prompter.SelectValue("What should dockfresh do?", []interaction.SelectOption{
		{Label: "Factory reset: wipe all engine state and restart", Value: "reset"},
		{Label: "Scoped clean: prune unused data, keep the engine", Value: "clean"},
		{Label: "Status: show engine state", Value: "status"},
	})
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, "Aborted.")
			return 0
		}
		return exitWithError(out, err)
	}

	switch choice {
	case "reset":
		return runReset(CLI{}, deps, out)
	case "clean":
		return runClean(CLI{}, deps, out)
	case "status":
		return runStatus(CLI{}, deps, out)
	}
	return 0
}
