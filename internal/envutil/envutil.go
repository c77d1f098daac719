// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"

	"github.com/poruru/dockfresh/internal/meta"
)

// HostEnvKey constructs a tool-level environment variable name
// by combining the tool prefix with the given suffix.
// Example: HostEnvKey("CONFIG") returns "DOCKFRESH_CONFIG".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a tool-level environment variable.
// Example: GetHostEnv("CONFIG") returns the value of DOCKFRESH_CONFIG.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}
