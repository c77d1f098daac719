// Where: internal/purge/targets.go
// What: Static table of engine data locations.
// Why: One authoritative list of what a wipe deletes, and in what order.
package purge

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Path is a single filesystem location slated for removal.
type Path struct {
	Location string
	// Elevated marks root-owned locations that need sudo rm -rf.
	Elevated bool
}

// Target groups the locations of one engine subsystem.
type Target struct {
	Subsystem string
	Paths     []Path
}

// Plan returns the full wipe table for the given home directory, in
// deletion order: core runtime data first, then per-user state.
func Plan(home string) []Target {
	targets := []Target{
		{
			Subsystem: "core runtime data",
			Paths: []Path{
				{Location: "/var/lib/docker", Elevated: true},
				{Location: "/var/lib/containerd", Elevated: true},
				{Location: "/etc/docker", Elevated: true},
			},
		},
	}
	return append(targets, UserPlan(home)...)
}

// UserPlan returns only the per-user targets. Scoped cleanup uses this
// table so engine installation directories are never touched.
func UserPlan(home string) []Target {
	return []Target{
		{
			Subsystem: "user configuration",
			Paths: []Path{
				{Location: filepath.Join(home, ".docker")},
			},
		},
		{
			Subsystem: "AI model runner",
			Paths: []Path{
				{Location: filepath.Join(home, ".docker", "model-runner")},
				{Location: filepath.Join(home, ".cache", "model-runner")},
				{Location: filepath.Join(home, ".local", "share", "model-runner")},
				{Location: filepath.Join(home, ".docker", "ai", "models")},
				{Location: filepath.Join(home, ".docker", "ai", "cache")},
			},
		},
		{
			Subsystem: "scan tool",
			Paths: []Path{
				{Location: filepath.Join(home, ".docker", "scout")},
				{Location: filepath.Join(home, ".cache", "scout")},
			},
		},
		{
			Subsystem: "CLI plugins",
			Paths: []Path{
				{Location: filepath.Join(home, ".docker", "cli-plugins")},
			},
		},
		{
			Subsystem: "generic caches",
			Paths: []Path{
				{Location: filepath.Join(xdg.CacheHome, "docker")},
				{Location: filepath.Join(home, ".local", "share", "docker")},
			},
		},
	}
}
