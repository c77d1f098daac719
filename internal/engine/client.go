// Where: internal/engine/client.go
// What: Docker client constructor.
// Why: Centralize Docker SDK initialization.
package engine

import "github.com/docker/docker/client"

// NewClient constructs a Docker SDK client using environment defaults.
func NewClient() (API, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}
