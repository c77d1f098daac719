// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep tool identity and engine naming in one place.
package meta

const (
	// Tool Identity
	AppName   = "dockfresh"
	Slug      = "dockfresh"
	EnvPrefix = "DOCKFRESH"

	// Directory Layout
	HomeDir = ".dockfresh"

	// Engine Identity
	EngineName   = "Docker"
	EngineBinary = "docker"
	EngineGroup  = "docker"

	// Where to point the operator when the daemon will not come up.
	EngineLogHint = "journalctl -u docker.service"
)
