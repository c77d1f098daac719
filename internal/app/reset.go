// Where: internal/app/reset.go
// What: Reset command pipeline.
// Why: Coordinate the full factory reset from preflight to final report.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/poruru/dockfresh/internal/preflight"
)

// runReset executes the 'reset' command: wipe all engine state, restart
// the daemon, then walk the optional review and upgrade stages.
func runReset(_ CLI, deps Dependencies, out io.Writer) int {
	if deps.Engine == nil {
		fmt.Fprintln(out, "reset: engine client not configured")
		return 1
	}

	if err := preflight.EnsureUnprivileged(deps.Preflight); err != nil {
		return exitWithError(out, err)
	}

	ctx := context.Background()

	relaunched, exitCode, err := preflight.EnsureGroup(ctx, []string{"reset"}, deps.Preflight)
	if err != nil {
		return exitWithError(out, err)
	}
	if relaunched {
		return exitCode
	}

	run, err := newCleanupRun(deps, out, resetProfile)
	if err != nil {
		return exitWithError(out, err)
	}

	if code, ok := advance(out, run.confirm()); !ok {
		return code
	}
	if code, ok := advance(out, run.pruneEngine(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.stopEngine(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.purgeFilesystem(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.restartEngine(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.reportState(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.reviewDirectories(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.upgradeEngine(ctx)); !ok {
		return code
	}
	if code, ok := advance(out, run.closingReport(ctx)); !ok {
		return code
	}
	return 0
}
