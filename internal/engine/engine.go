// Where: internal/engine/engine.go
// What: Docker SDK subset and row types shared by engine operations.
// Why: Keep every daemon interaction behind a narrow, mockable surface.
package engine

import (
	"context"
	"errors"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/api/types/volume"
)

var ErrClientNil = errors.New("docker client is nil")

// API defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type API interface {
	Ping(ctx context.Context) (types.Ping, error)
	Info(ctx context.Context) (system.Info, error)
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	VolumeList(ctx context.Context, options volume.ListOptions) (volume.ListResponse, error)
	NetworkList(ctx context.Context, options network.ListOptions) ([]network.Summary, error)
	ContainersPrune(ctx context.Context, pruneFilters filters.Args) (container.PruneReport, error)
	ImagesPrune(ctx context.Context, pruneFilters filters.Args) (image.PruneReport, error)
	VolumesPrune(ctx context.Context, pruneFilters filters.Args) (volume.PruneReport, error)
	NetworksPrune(ctx context.Context, pruneFilters filters.Args) (network.PruneReport, error)
	BuildCachePrune(ctx context.Context, opts build.CachePruneOptions) (*build.CachePruneReport, error)
}

// ContainerRow summarizes one container for state reports.
type ContainerRow struct {
	ID     string
	Image  string
	Status string
	Names  string
}

// ImageRow summarizes one image for state reports.
type ImageRow struct {
	ID         string
	Repository string
	Tag        string
	Size       int64
}

// VolumeRow summarizes one volume for state reports.
type VolumeRow struct {
	Name   string
	Driver string
}

// NetworkRow summarizes one network for state reports.
type NetworkRow struct {
	ID     string
	Name   string
	Driver string
	Scope  string
}

// Info describes the running daemon for status output.
type Info struct {
	ServerVersion     string
	OperatingSystem   string
	Containers        int
	ContainersRunning int
	Images            int
}
