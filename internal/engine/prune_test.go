// Where: internal/engine/prune_test.go
// What: Tests for engine-level cleanup.
// Why: Ensure prune aggressiveness and filters match the selected mode.
package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/api/types/volume"
)

type fakeAPI struct {
	pingErr    error
	info       system.Info
	infoErr    error
	containers []container.Summary
	images     []image.Summary
	volumes    []*volume.Volume
	networks   []network.Summary
	listErr    error

	removed          []string
	removeOpts       []container.RemoveOptions
	removeErrFor     string
	containerFilters []filters.Args
	networkFilters   []filters.Args
	volumeFilters    []filters.Args
	imageFilters     []filters.Args
	buildPrunes      []build.CachePruneOptions
}

func (f *fakeAPI) Ping(_ context.Context) (types.Ping, error) {
	return types.Ping{}, f.pingErr
}

func (f *fakeAPI) Info(_ context.Context) (system.Info, error) {
	return f.info, f.infoErr
}

func (f *fakeAPI) ContainerList(_ context.Context, _ container.ListOptions) ([]container.Summary, error) {
	return f.containers, f.listErr
}

func (f *fakeAPI) ContainerRemove(_ context.Context, id string, options container.RemoveOptions) error {
	f.removeOpts = append(f.removeOpts, options)
	if id == f.removeErrFor {
		return fmt.Errorf("container %s is locked", id)
	}
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeAPI) ImageList(_ context.Context, _ image.ListOptions) ([]image.Summary, error) {
	return f.images, f.listErr
}

func (f *fakeAPI) VolumeList(_ context.Context, _ volume.ListOptions) (volume.ListResponse, error) {
	return volume.ListResponse{Volumes: f.volumes}, f.listErr
}

func (f *fakeAPI) NetworkList(_ context.Context, _ network.ListOptions) ([]network.Summary, error) {
	return f.networks, f.listErr
}

func (f *fakeAPI) ContainersPrune(_ context.Context, pruneFilters filters.Args) (container.PruneReport, error) {
	f.containerFilters = append(f.containerFilters, pruneFilters)
	return container.PruneReport{ContainersDeleted: []string{"c1"}, SpaceReclaimed: 10}, nil
}

func (f *fakeAPI) ImagesPrune(_ context.Context, pruneFilters filters.Args) (image.PruneReport, error) {
	f.imageFilters = append(f.imageFilters, pruneFilters)
	return image.PruneReport{ImagesDeleted: []image.DeleteResponse{{Deleted: "i1"}}, SpaceReclaimed: 5}, nil
}

func (f *fakeAPI) VolumesPrune(_ context.Context, pruneFilters filters.Args) (volume.PruneReport, error) {
	f.volumeFilters = append(f.volumeFilters, pruneFilters)
	return volume.PruneReport{VolumesDeleted: []string{"v1"}, SpaceReclaimed: 7}, nil
}

func (f *fakeAPI) NetworksPrune(_ context.Context, pruneFilters filters.Args) (network.PruneReport, error) {
	f.networkFilters = append(f.networkFilters, pruneFilters)
	return network.PruneReport{NetworksDeleted: []string{"n1"}}, nil
}

func (f *fakeAPI) BuildCachePrune(_ context.Context, opts build.CachePruneOptions) (*build.CachePruneReport, error) {
	f.buildPrunes = append(f.buildPrunes, opts)
	return &build.CachePruneReport{CachesDeleted: []string{"b1"}, SpaceReclaimed: 11}, nil
}

func TestPruneAllRemoveAll(t *testing.T) {
	api := &fakeAPI{containers: []container.Summary{{ID: "aaa"}, {ID: "bbb"}}}

	report, err := PruneAll(context.Background(), api, PruneOptions{RemoveAll: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.ContainersRemoved != 2 {
		t.Fatalf("expected 2 containers removed, got %d", report.ContainersRemoved)
	}
	for _, opts := range api.removeOpts {
		if !opts.Force {
			t.Fatalf("expected forced container removal")
		}
	}
	if got := getFilterValue(api.volumeFilters[0], "all"); got != "true" {
		t.Fatalf("expected all=true volume filter, got %q", got)
	}
	if got := getFilterValue(api.imageFilters[0], "dangling"); got != "false" {
		t.Fatalf("expected dangling=false image filter, got %q", got)
	}
	if report.SpaceReclaimed != 22 {
		t.Fatalf("unexpected reclaimed space: %d", report.SpaceReclaimed)
	}
}

func TestPruneAllConservative(t *testing.T) {
	api := &fakeAPI{containers: []container.Summary{{ID: "aaa"}}}

	report, err := PruneAll(context.Background(), api, PruneOptions{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(api.removed) != 0 {
		t.Fatalf("expected no forced removals, got %v", api.removed)
	}
	if got := getFilterValue(api.volumeFilters[0], "all"); got != "" {
		t.Fatalf("expected no all filter for volumes, got %q", got)
	}
	if got := getFilterValue(api.imageFilters[0], "dangling"); got != "true" {
		t.Fatalf("expected dangling=true image filter, got %q", got)
	}
	if len(report.ContainersDeleted) != 1 {
		t.Fatalf("expected prune-reported container, got %v", report.ContainersDeleted)
	}
}

func TestPruneAllSkipsLockedContainers(t *testing.T) {
	api := &fakeAPI{
		containers:   []container.Summary{{ID: "aaa"}, {ID: "bbb"}},
		removeErrFor: "aaa",
	}

	report, err := PruneAll(context.Background(), api, PruneOptions{RemoveAll: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.ContainersRemoved != 1 {
		t.Fatalf("expected 1 container removed, got %d", report.ContainersRemoved)
	}
}

func TestPruneAllNilClient(t *testing.T) {
	if _, err := PruneAll(context.Background(), nil, PruneOptions{}); err == nil {
		t.Fatalf("expected error for nil client")
	}
}

func TestPruneBuildCache(t *testing.T) {
	api := &fakeAPI{}

	reclaimed, err := PruneBuildCache(context.Background(), api, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reclaimed != 11 {
		t.Fatalf("unexpected reclaimed space: %d", reclaimed)
	}
	if len(api.buildPrunes) != 1 || !api.buildPrunes[0].All {
		t.Fatalf("expected one all-cache prune, got %+v", api.buildPrunes)
	}
}

func getFilterValue(pruneFilters filters.Args, key string) string {
	values := pruneFilters.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
