// Where: internal/app/clean.go
// What: Clean command pipeline.
// Why: Scoped cleanup that must leave a working engine behind.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/poruru/dockfresh/internal/preflight"
)

// runClean executes the 'clean' command: conservative engine prune plus
// per-user filesystem cleanup. Engine installation data is never touched
// and the daemon keeps running throughout.
func runClean(_ CLI, deps Dependencies, out io.Writer) int {
	if deps.Engine == nil {
		fmt.Fprintln(out, "clean: engine client not configured")
		return 1
	}

	if err := preflight.EnsureUnprivileged(deps.Preflight); err != nil {
		return exitWithError(out, err)
	}
	if err := preflight.EnsureEngineInstalled(); err != nil {
		return exitWithError(out, err)
	}

	ctx := context.Background()

	run, err := newCleanupRun(deps, out, cleanProfile)
	if err != nil {
		return exitWithError(out, err)
	}

	if code, ok := advance(out, run.confirm()); !ok {
		return code
	}
	if code, ok := advance(out, run.pruneEngine(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.purgeFilesystem(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.reviewDirectories(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.verifyEngine(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.reportState(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.closingReport(ctx)); !ok {
		return code
	}
	return 0
}
