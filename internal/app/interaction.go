// Where: internal/app/interaction.go
// What: TTY detection seam for the app package.
// Why: Let tests force interactive and non-interactive behavior.
package app

import (
	"github.com/poruru/dockfresh/internal/interaction"
)

var isTerminal = interaction.IsTerminal
