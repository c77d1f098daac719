// Where: internal/app/pipeline.go
// What: Shared cleanup pipeline state and stages.
// Why: Reset and clean differ only in scope; the stage logic is one.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/poruru/dockfresh/internal/config"
	"github.com/poruru/dockfresh/internal/engine"
	"github.com/poruru/dockfresh/internal/meta"
	"github.com/poruru/dockfresh/internal/purge"
	"github.com/poruru/dockfresh/internal/report"
	"github.com/poruru/dockfresh/internal/ui"
)

// runProfile selects the scope of a cleanup run.
type runProfile struct {
	mode           string
	removeAll      bool
	requirePattern bool
	targets        func(home string) []purge.Target
}

var (
	resetProfile = runProfile{
		mode:           "reset",
		removeAll:      true,
		requirePattern: false,
		targets:        purge.Plan,
	}
	cleanProfile = runProfile{
		mode:           "clean",
		removeAll:      false,
		requirePattern: true,
		targets:        purge.UserPlan,
	}
)

// cleanupRun carries the state shared by the pipeline stages of one
// reset or clean invocation.
type cleanupRun struct {
	deps           Dependencies
	out            io.Writer
	console        *ui.Console
	mode           string
	removeAll      bool
	requirePattern bool
	targets        []purge.Target
	extraExcludes  []string
	counts         resourceCounts
	reclaimed      uint64
	warnings       []string
}

// newCleanupRun resolves the home directory and the tool configuration.
// An invalid configuration aborts here, before anything is touched.
func newCleanupRun(deps Dependencies, out io.Writer, profile runProfile) (*cleanupRun, error) {
	home, err := resolveHome(deps)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadGlobal()
	if err != nil {
		return nil, err
	}

	return &cleanupRun{
		deps:           deps,
		out:            out,
		console:        ui.New(out),
		mode:           profile.mode,
		removeAll:      profile.removeAll,
		requirePattern: profile.requirePattern,
		targets:        profile.targets(home),
		extraExcludes:  cfg.ExtraExcludeNames,
	}, nil
}

// warn prints a warning immediately and keeps it for the closing report.
func (r *cleanupRun) warn(msg string) {
	r.console.Warn(msg)
	r.warnings = append(r.warnings, msg)
}

// confirm prints the scope of the run and asks for the single
// authorization that covers the whole wipe.
func (r *cleanupRun) confirm() stageResult {
	if r.removeAll {
		printResetWarning(r.out)
	} else {
		printCleanWarning(r.out)
	}

	confirmed, err := r.deps.Confirmer.Confirm("Are you sure you want to continue?")
	if err != nil {
		return failed(err)
	}
	if !confirmed {
		return aborted()
	}
	return proceeded()
}

// pruneEngine reclaims engine-managed state through the API while the
// daemon is still up. An unreachable daemon means there is nothing to
// reclaim, so failures degrade to warnings.
func (r *cleanupRun) pruneEngine(ctx context.Context) stageResult {
	r.console.Header("🧹", "Reclaiming engine-managed state")

	pruned, err := r.deps.Engine.PruneAll(ctx, engine.PruneOptions{RemoveAll: r.removeAll})
	if err != nil {
		r.warn(fmt.Sprintf("engine prune incomplete: %v", err))
	}
	r.reclaimed += pruned.SpaceReclaimed
	r.console.Item("Containers", pruned.ContainersRemoved+len(pruned.ContainersDeleted))
	r.console.Item("Images", pruned.ImagesDeleted)
	r.console.Item("Volumes", len(pruned.VolumesDeleted))
	r.console.Item("Networks", len(pruned.NetworksDeleted))

	space, err := r.deps.Engine.PruneBuildCache(ctx, r.removeAll)
	if err != nil {
		r.warn(fmt.Sprintf("build cache prune incomplete: %v", err))
	} else {
		r.reclaimed += space
		r.console.Item("Build cache", humanize.IBytes(space))
	}
	return proceeded()
}

// stopEngine takes the engine services down before filesystem deletion.
func (r *cleanupRun) stopEngine(ctx context.Context) stageResult {
	r.console.Header("🛑", "Stopping engine services")
	r.deps.Engine.Stop(ctx, r.warn)
	return proceeded()
}

// purgeFilesystem removes every target path, best-effort per path.
func (r *cleanupRun) purgeFilesystem(ctx context.Context) stageResult {
	r.console.Header("🗑️", "Removing filesystem state")
	purge.Run(ctx, r.deps.Remover, r.targets, func(subsystem, path string, err error) {
		if err != nil {
			r.warn(fmt.Sprintf("%s: could not remove %s: %v", subsystem, path, err))
			return
		}
		r.console.ItemPlain(path)
	})
	return proceeded()
}

// restartEngine brings the daemon back and waits until it answers.
func (r *cleanupRun) restartEngine(ctx context.Context) stageResult {
	r.console.Header("🚀", "Restarting the engine")
	if err := startAndAwaitReady(ctx, r.deps.Engine, r.deps.Sleep); err != nil {
		return failed(err)
	}
	r.console.Success("Engine is ready")
	return proceeded()
}

// verifyEngine checks that the daemon survived a scoped cleanup.
func (r *cleanupRun) verifyEngine(ctx context.Context) stageResult {
	if err := r.deps.Engine.Ping(ctx); err != nil {
		return failed(fmt.Errorf("engine is not responding after cleanup: %w (check %s)", err, meta.EngineLogHint))
	}
	r.console.Success("Engine is responding")
	return proceeded()
}

// reportState lists the remaining resources and keeps the counts for
// the closing report. Failures here are informational only.
func (r *cleanupRun) reportState(ctx context.Context) stageResult {
	r.counts = writeStateReport(ctx, r.deps.Engine, r.out, r.warn)
	return proceeded()
}

// closingReport renders the final summary.
func (r *cleanupRun) closingReport(ctx context.Context) stageResult {
	data := report.ClosingData{
		Mode:           r.mode,
		Containers:     r.counts.containers,
		Images:         r.counts.images,
		Volumes:        r.counts.volumes,
		Networks:       r.counts.networks,
		SpaceReclaimed: humanize.IBytes(r.reclaimed),
		Warnings:       r.warnings,
	}
	if info, err := r.deps.Engine.Info(ctx); err == nil {
		data.ServerVersion = info.ServerVersion
	}

	content, err := report.RenderClosing(data)
	if err != nil {
		return failed(err)
	}
	fmt.Fprintln(r.out)
	fmt.Fprint(r.out, content)
	return proceeded()
}

func printResetWarning(out io.Writer) {
	fmt.Fprintln(out, "WARNING! This will remove:")
	fmt.Fprintln(out, "  - all containers, images, volumes, and networks")
	fmt.Fprintln(out, "  - the engine build cache")
	fmt.Fprintln(out, "  - engine runtime data under /var/lib/docker and /var/lib/containerd")
	fmt.Fprintln(out, "  - engine configuration under /etc/docker")
	fmt.Fprintln(out, "  - per-user engine state (~/.docker, caches, model runner, Scout)")
	fmt.Fprintln(out, "")
}

func printCleanWarning(out io.Writer) {
	fmt.Fprintln(out, "WARNING! This will remove:")
	fmt.Fprintln(out, "  - all stopped containers")
	fmt.Fprintln(out, "  - all dangling images")
	fmt.Fprintln(out, "  - all unused volumes and networks")
	fmt.Fprintln(out, "  - the engine build cache")
	fmt.Fprintln(out, "  - per-user engine state (~/.docker, caches, model runner, Scout)")
	fmt.Fprintln(out, "")
}
