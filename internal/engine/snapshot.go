// Where: internal/engine/snapshot.go
// What: Read-only daemon state queries.
// Why: Feed state reports without leaking SDK types upward.
package engine

import (
	"context"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/volume"
)

// Ping probes daemon liveness.
func Ping(ctx context.Context, api API) error {
	if api == nil {
		return ErrClientNil
	}
	_, err := api.Ping(ctx)
	return err
}

// GetInfo returns a condensed view of the daemon state.
func GetInfo(ctx context.Context, api API) (Info, error) {
	if api == nil {
		return Info{}, ErrClientNil
	}
	info, err := api.Info(ctx)
	if err != nil {
		return Info{}, err
	}
	return Info{
		ServerVersion:     info.ServerVersion,
		OperatingSystem:   info.OperatingSystem,
		Containers:        info.Containers,
		ContainersRunning: info.ContainersRunning,
		Images:            info.Images,
	}, nil
}

// ListContainers returns all containers, running or not.
func ListContainers(ctx context.Context, api API) ([]ContainerRow, error) {
	if api == nil {
		return nil, ErrClientNil
	}
	containers, err := api.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, err
	}

	rows := make([]ContainerRow, 0, len(containers))
	for _, ctr := range containers {
		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}
		rows = append(rows, ContainerRow{
			ID:     shortID(ctr.ID),
			Image:  ctr.Image,
			Status: ctr.Status,
			Names:  name,
		})
	}
	return rows, nil
}

// ListImages returns all images including intermediates.
func ListImages(ctx context.Context, api API) ([]ImageRow, error) {
	if api == nil {
		return nil, ErrClientNil
	}
	images, err := api.ImageList(ctx, image.ListOptions{All: true})
	if err != nil {
		return nil, err
	}

	rows := make([]ImageRow, 0, len(images))
	for _, img := range images {
		repo, tag := splitRepoTag(img.RepoTags)
		rows = append(rows, ImageRow{
			ID:         shortID(img.ID),
			Repository: repo,
			Tag:        tag,
			Size:       img.Size,
		})
	}
	return rows, nil
}

// ListVolumes returns all volumes known to the daemon.
func ListVolumes(ctx context.Context, api API) ([]VolumeRow, error) {
	if api == nil {
		return nil, ErrClientNil
	}
	resp, err := api.VolumeList(ctx, volume.ListOptions{})
	if err != nil {
		return nil, err
	}

	rows := make([]VolumeRow, 0, len(resp.Volumes))
	for _, vol := range resp.Volumes {
		if vol == nil {
			continue
		}
		rows = append(rows, VolumeRow{Name: vol.Name, Driver: vol.Driver})
	}
	return rows, nil
}

// ListNetworks returns all networks including the builtin ones.
func ListNetworks(ctx context.Context, api API) ([]NetworkRow, error) {
	if api == nil {
		return nil, ErrClientNil
	}
	networks, err := api.NetworkList(ctx, network.ListOptions{})
	if err != nil {
		return nil, err
	}

	rows := make([]NetworkRow, 0, len(networks))
	for _, nw := range networks {
		rows = append(rows, NetworkRow{
			ID:     shortID(nw.ID),
			Name:   nw.Name,
			Driver: nw.Driver,
			Scope:  nw.Scope,
		})
	}
	return rows, nil
}

// shortID strips the digest prefix and truncates to the familiar 12 chars.
func shortID(id string) string {
	id = strings.TrimPrefix(id, "sha256:")
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// splitRepoTag extracts repository and tag from the first tag reference.
func splitRepoTag(repoTags []string) (string, string) {
	if len(repoTags) == 0 {
		return "<none>", "<none>"
	}
	ref := repoTags[0]
	idx := strings.LastIndex(ref, ":")
	if idx < 0 {
		return ref, "<none>"
	}
	return ref[:idx], ref[idx+1:]
}
