// Where: internal/app/upgrade.go
// What: Optional engine package upgrade stage.
// Why: A freshly reset engine is a good moment to pull current packages.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/poruru/dockfresh/internal/pkgmgr"
)

// upgradeEngine offers a package-manager upgrade of the engine packages.
// Declining skips the stage; a missing package manager or a failing
// upgrade is a warning, never a pipeline failure.
func (r *cleanupRun) upgradeEngine(ctx context.Context) stageResult {
	confirmed, err := r.deps.Confirmer.Confirm(fmt.Sprintf("Upgrade the engine packages (%s)?", strings.Join(pkgmgr.EnginePackages, ", ")))
	if err != nil {
		return failed(err)
	}
	if !confirmed {
		r.console.Info("Skipping package upgrade")
		return proceeded()
	}

	manager, ok := pkgmgr.Detect()
	if !ok {
		r.warn("no supported package manager found (tried apt, yum, dnf); upgrade skipped")
		return proceeded()
	}

	r.console.Header("⬆️", fmt.Sprintf("Upgrading engine packages via %s", manager.Name))
	if err := manager.Upgrade(ctx, r.deps.Runner); err != nil {
		r.warn(fmt.Sprintf("package upgrade failed: %v", err))
		return proceeded()
	}
	r.console.Success("Engine packages upgraded")
	return proceeded()
}
