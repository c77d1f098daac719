// Where: internal/review/review.go
// What: One-level scan and classification of directories under /opt.
// Why: Offer only plausible user project dirs for deletion, never engine internals.
package review

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

// Root is the reviewable system directory.
const Root = "/opt"

// ExcludeNames are substrings that mark a directory as engine-internal.
// Matching is case-insensitive against the basename. The substring rule
// intentionally over-excludes: a skipped directory is a smaller mistake
// than a deleted one.
var ExcludeNames = []string{"docker", "containerd", "docker-desktop"}

// ProjectPatterns are substrings typical of user project directories.
var ProjectPatterns = []string{"project", "app", "service", "stack", "infra", "deployment", "solution"}

// Candidate is one directory offered for review.
type Candidate struct {
	Path      string
	Name      string
	SizeLabel string
}

// Options configure a scan. Exclude entries are appended to ExcludeNames,
// never replacing them.
type Options struct {
	Root                  string
	Exclude               []string
	RequireProjectPattern bool
}

// Scan lists the directories directly under the root, in lexical order,
// keeping only those readable by the current principal and not matched by
// the exclusion rules.
func Scan(opts Options) ([]Candidate, error) {
	root := opts.Root
	if root == "" {
		root = Root
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	exclusions := make([]string, 0, len(ExcludeNames)+len(opts.Exclude))
	exclusions = append(exclusions, ExcludeNames...)
	exclusions = append(exclusions, opts.Exclude...)

	var candidates []Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(root, name)
		if !readable(path) {
			continue
		}
		if IsExcluded(name, exclusions) {
			continue
		}
		if opts.RequireProjectPattern && !MatchesProjectPattern(name) {
			continue
		}
		candidates = append(candidates, Candidate{
			Path:      path,
			Name:      name,
			SizeLabel: sizeLabel(path),
		})
	}
	return candidates, nil
}

// IsExcluded reports whether name contains any exclusion entry,
// case-insensitively.
func IsExcluded(name string, exclusions []string) bool {
	lower := strings.ToLower(name)
	for _, entry := range exclusions {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if strings.Contains(lower, entry) {
			return true
		}
	}
	return false
}

// MatchesProjectPattern reports whether name looks like a user project
// directory.
func MatchesProjectPattern(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range ProjectPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// readable checks real-credential read and traverse access.
func readable(path string) bool {
	return unix.Access(path, unix.R_OK|unix.X_OK) == nil
}

// sizeLabel sums regular file sizes under path, best-effort. Unreadable
// subtrees simply do not count; an unreadable root yields "unknown".
func sizeLabel(path string) string {
	var total uint64
	var rootErr error
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == path {
				rootErr = err
			}
			return nil
		}
		if d.Type().IsRegular() {
			if info, infoErr := d.Info(); infoErr == nil {
				total += uint64(info.Size())
			}
		}
		return nil
	})
	if rootErr != nil {
		return "unknown"
	}
	return humanize.IBytes(total)
}
