// Where: internal/app/lifecycle.go
// What: Engine restart and readiness polling.
// Why: A reset is only done when the daemon answers again.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/poruru/dockfresh/internal/meta"
	"github.com/poruru/dockfresh/internal/sysd"
)

const (
	readyMaxAttempts  = 15
	readyPollInterval = 2 * time.Second
)

// startAndAwaitReady starts the engine unit and polls the liveness probe
// until it answers or the attempts are exhausted.
func startAndAwaitReady(ctx context.Context, client EngineClient, sleep func(time.Duration)) error {
	if err := client.Start(ctx); err != nil {
		return fmt.Errorf("start %s: %w", sysd.EngineUnit, err)
	}

	for attempt := 1; attempt <= readyMaxAttempts; attempt++ {
		if err := client.Ping(ctx); err == nil {
			return nil
		}
		if attempt < readyMaxAttempts {
			sleep(readyPollInterval)
		}
	}

	return fmt.Errorf("%s did not become ready after %d attempts: check %s",
		meta.EngineName, readyMaxAttempts, meta.EngineLogHint)
}
