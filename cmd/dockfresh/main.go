// Where: cmd/dockfresh/main.go
// What: CLI entrypoint.
// Why: Execute dockfresh commands with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/poruru/dockfresh/internal/app"
)

func main() {
	deps, closer, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	code := app.Run(os.Args[1:], deps)
	if closer != nil {
		_ = closer.Close()
	}
	os.Exit(code)
}
