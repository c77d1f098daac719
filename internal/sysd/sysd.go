// Where: internal/sysd/sysd.go
// What: systemd unit control for the engine services.
// Why: Stop and restart the daemon around destructive filesystem work.
package sysd

import (
	"context"
	"fmt"
	"time"

	"github.com/poruru/dockfresh/internal/execute"
)

// Units managed around a reset, in stop order. The socket must go down
// with the service or socket activation restarts the daemon mid-purge.
var Units = []string{"docker.service", "docker.socket", "containerd.service"}

// EngineUnit is the unit started to bring the engine back.
const EngineUnit = "docker.service"

const defaultSettle = 2 * time.Second

// Controller drives systemctl through per-command sudo.
type Controller struct {
	Runner execute.CommandRunner
	// Settle is the pause after stopping all units so they can release
	// sockets and files. Zero means the 2s default.
	Settle time.Duration
	Sleep  func(time.Duration)
}

// NewController creates a Controller with the standard settle delay.
func NewController(runner execute.CommandRunner) Controller {
	return Controller{Runner: runner, Settle: defaultSettle, Sleep: time.Sleep}
}

// StopAll stops every engine unit best-effort, reporting failures through
// warn, then waits for the settle delay.
func (c Controller) StopAll(ctx context.Context, warn func(string)) {
	for _, unit := range Units {
		if err := c.Runner.RunQuiet(ctx, "sudo", "systemctl", "stop", unit); err != nil {
			if warn != nil {
				warn(fmt.Sprintf("could not stop %s: %v", unit, err))
			}
		}
	}
	c.sleep()
}

// Start brings the engine service back up.
func (c Controller) Start(ctx context.Context) error {
	return c.Runner.Run(ctx, "sudo", "systemctl", "start", EngineUnit)
}

func (c Controller) sleep() {
	settle := c.Settle
	if settle == 0 {
		settle = defaultSettle
	}
	sleep := c.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(settle)
}
