// Where: internal/app/status.go
// What: Status command and shared state reporting.
// Why: Read-only view of the engine and its leftover resources.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/poruru/dockfresh/internal/meta"
	"github.com/poruru/dockfresh/internal/report"
	"github.com/poruru/dockfresh/internal/ui"
)

// runStatus executes the 'status' command.
func runStatus(_ CLI, deps Dependencies, out io.Writer) int {
	if deps.Engine == nil {
		fmt.Fprintln(out, "status: engine client not configured")
		return 1
	}

	ctx := context.Background()

	info, err := deps.Engine.Info(ctx)
	if err != nil {
		return exitWithError(out, fmt.Errorf("%s is not reachable: %w (check %s)", meta.EngineName, err, meta.EngineLogHint))
	}

	content, err := report.RenderStatus(report.StatusData{
		EngineName:        meta.EngineName,
		ServerVersion:     info.ServerVersion,
		OperatingSystem:   info.OperatingSystem,
		Containers:        info.Containers,
		ContainersRunning: info.ContainersRunning,
		Images:            info.Images,
	})
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprint(out, content)
	fmt.Fprintln(out)

	console := ui.New(out)
	writeStateReport(ctx, deps.Engine, out, console.Warn)
	return 0
}

// resourceCounts carries how many of each resource kind survive.
type resourceCounts struct {
	containers int
	images     int
	volumes    int
	networks   int
}

// writeStateReport lists all four resource kinds as tables. Listing
// failures are reported through warn and leave that count at zero.
func writeStateReport(ctx context.Context, client EngineClient, out io.Writer, warn func(string)) resourceCounts {
	console := ui.New(out)
	var counts resourceCounts

	if rows, err := client.ListContainers(ctx); err != nil {
		warn(fmt.Sprintf("list containers: %v", err))
	} else {
		counts.containers = len(rows)
		console.Header("📦", fmt.Sprintf("Containers (%d)", len(rows)))
		if len(rows) > 0 {
			report.WriteContainersTable(out, rows)
		}
	}

	if rows, err := client.ListImages(ctx); err != nil {
		warn(fmt.Sprintf("list images: %v", err))
	} else {
		counts.images = len(rows)
		console.Header("💿", fmt.Sprintf("Images (%d)", len(rows)))
		if len(rows) > 0 {
			report.WriteImagesTable(out, rows)
		}
	}

	if rows, err := client.ListVolumes(ctx); err != nil {
		warn(fmt.Sprintf("list volumes: %v", err))
	} else {
		counts.volumes = len(rows)
		console.Header("💾", fmt.Sprintf("Volumes (%d)", len(rows)))
		if len(rows) > 0 {
			report.WriteVolumesTable(out, rows)
		}
	}

	if rows, err := client.ListNetworks(ctx); err != nil {
		warn(fmt.Sprintf("list networks: %v", err))
	} else {
		counts.networks = len(rows)
		console.Header("🌐", fmt.Sprintf("Networks (%d)", len(rows)))
		if len(rows) > 0 {
			report.WriteNetworksTable(out, rows)
		}
	}

	return counts
}
