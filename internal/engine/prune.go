// Where: internal/engine/prune.go
// What: Engine-level cleanup through the daemon API.
// Why: Clear engine-managed state via the engine itself before touching its files on disk.
package engine

import (
	"context"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
)

// PruneOptions selects how aggressive the engine-level cleanup is.
type PruneOptions struct {
	// RemoveAll force-removes every container first, then prunes all
	// unused images and all unused volumes including named ones. When
	// false only stopped containers, dangling images, and anonymous
	// volumes are reclaimed.
	RemoveAll bool
}

// PruneReport summarizes what the daemon deleted.
type PruneReport struct {
	ContainersRemoved int
	ContainersDeleted []string
	ImagesDeleted     int
	VolumesDeleted    []string
	NetworksDeleted   []string
	SpaceReclaimed    uint64
}

// PruneAll clears engine-managed state: containers, then networks,
// volumes, and images, accumulating reclaimed space. Individual container
// removals are best-effort; a failing prune call aborts the sequence and
// returns the partial report.
func PruneAll(ctx context.Context, api API, opts PruneOptions) (PruneReport, error) {
	report := PruneReport{}
	if api == nil {
		return report, ErrClientNil
	}

	if opts.RemoveAll {
		containers, err := api.ContainerList(ctx, container.ListOptions{All: true})
		if err != nil {
			return report, err
		}
		for _, ctr := range containers {
			if err := api.ContainerRemove(ctx, ctr.ID, container.RemoveOptions{Force: true}); err != nil {
				continue
			}
			report.ContainersRemoved++
		}
	}

	containers, err := api.ContainersPrune(ctx, filters.NewArgs())
	if err != nil {
		return report, err
	}
	report.ContainersDeleted = append(report.ContainersDeleted, containers.ContainersDeleted...)
	report.SpaceReclaimed += containers.SpaceReclaimed

	networks, err := api.NetworksPrune(ctx, filters.NewArgs())
	if err != nil {
		return report, err
	}
	report.NetworksDeleted = append(report.NetworksDeleted, networks.NetworksDeleted...)

	volumes, err := api.VolumesPrune(ctx, volumePruneFilters(opts.RemoveAll))
	if err != nil {
		return report, err
	}
	report.VolumesDeleted = append(report.VolumesDeleted, volumes.VolumesDeleted...)
	report.SpaceReclaimed += volumes.SpaceReclaimed

	images, err := api.ImagesPrune(ctx, imagePruneFilters(opts.RemoveAll))
	if err != nil {
		return report, err
	}
	report.ImagesDeleted += len(images.ImagesDeleted)
	report.SpaceReclaimed += images.SpaceReclaimed

	return report, nil
}

// PruneBuildCache clears the builder cache and returns reclaimed bytes.
func PruneBuildCache(ctx context.Context, api API, all bool) (uint64, error) {
	if api == nil {
		return 0, ErrClientNil
	}
	report, err := api.BuildCachePrune(ctx, build.CachePruneOptions{All: all})
	if err != nil {
		return 0, err
	}
	return report.SpaceReclaimed, nil
}

// volumePruneFilters asks the daemon for all unused volumes when removeAll
// is set; the default otherwise reclaims only anonymous ones.
func volumePruneFilters(removeAll bool) filters.Args {
	if removeAll {
		return filters.NewArgs(filters.Arg("all", "true"))
	}
	return filters.NewArgs()
}

func imagePruneFilters(removeAll bool) filters.Args {
	if removeAll {
		return filters.NewArgs(filters.Arg("dangling", "false"))
	}
	return filters.NewArgs(filters.Arg("dangling", "true"))
}
