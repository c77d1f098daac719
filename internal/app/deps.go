// Where: internal/app/deps.go
// What: Dependency wiring for engine access and host interaction.
// Why: Centralize injection seams so pipelines stay testable.
package app

import (
	"context"
	"io"
	"time"

	"github.com/poruru/dockfresh/internal/engine"
	"github.com/poruru/dockfresh/internal/execute"
	"github.com/poruru/dockfresh/internal/interaction"
	"github.com/poruru/dockfresh/internal/preflight"
	"github.com/poruru/dockfresh/internal/purge"
	"github.com/poruru/dockfresh/internal/sysd"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	Out        io.Writer
	Home       string
	Engine     EngineClient
	Confirmer  Confirmer
	Prompter   interaction.Prompter
	Remover    purge.Remover
	Runner     execute.CommandRunner
	Preflight  preflight.Deps
	Sleep      func(time.Duration)
	ReviewRoot string
}

// Confirmer asks the operator a yes/no question. Declining is always the
// default answer.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// EngineClient is the narrow engine surface the pipelines depend on.
// The real implementation talks to the daemon through the SDK and to
// systemd through per-command sudo; tests swap in fakes.
type EngineClient interface {
	Ping(ctx context.Context) error
	Info(ctx context.Context) (engine.Info, error)
	PruneAll(ctx context.Context, opts engine.PruneOptions) (engine.PruneReport, error)
	PruneBuildCache(ctx context.Context, all bool) (uint64, error)
	ListContainers(ctx context.Context) ([]engine.ContainerRow, error)
	ListImages(ctx context.Context) ([]engine.ImageRow, error)
	ListVolumes(ctx context.Context) ([]engine.VolumeRow, error)
	ListNetworks(ctx context.Context) ([]engine.NetworkRow, error)
	Stop(ctx context.Context, warn func(string))
	Start(ctx context.Context) error
}

// NewEngineClient combines the SDK client with the systemd controller
// into the EngineClient the pipelines consume.
func NewEngineClient(api engine.API, control sysd.Controller) EngineClient {
	return engineClient{api: api, control: control}
}

type engineClient struct {
	api     engine.API
	control sysd.Controller
}

func (c engineClient) Ping(ctx context.Context) error {
	return engine.Ping(ctx, c.api)
}

func (c engineClient) Info(ctx context.Context) (engine.Info, error) {
	return engine.GetInfo(ctx, c.api)
}

func (c engineClient) PruneAll(ctx context.Context, opts engine.PruneOptions) (engine.PruneReport, error) {
	return engine.PruneAll(ctx, c.api, opts)
}

func (c engineClient) PruneBuildCache(ctx context.Context, all bool) (uint64, error) {
	return engine.PruneBuildCache(ctx, c.api, all)
}

func (c engineClient) ListContainers(ctx context.Context) ([]engine.ContainerRow, error) {
	return engine.ListContainers(ctx, c.api)
}

func (c engineClient) ListImages(ctx context.Context) ([]engine.ImageRow, error) {
	return engine.ListImages(ctx, c.api)
}

func (c engineClient) ListVolumes(ctx context.Context) ([]engine.VolumeRow, error) {
	return engine.ListVolumes(ctx, c.api)
}

func (c engineClient) ListNetworks(ctx context.Context) ([]engine.NetworkRow, error) {
	return engine.ListNetworks(ctx, c.api)
}

func (c engineClient) Stop(ctx context.Context, warn func(string)) {
	c.control.StopAll(ctx, warn)
}

func (c engineClient) Start(ctx context.Context) error {
	return c.control.Start(ctx)
}
