// Where: internal/review/review_test.go
// What: Tests for directory classification.
// Why: The exclusion rules are the safety line between cleanup and data loss.
package review

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
	}
}

func names(candidates []Candidate) []string {
	var out []string
	for _, c := range candidates {
		out = append(out, c.Name)
	}
	return out
}

func TestIsExcludedMatchesSubstringsCaseInsensitive(t *testing.T) {
	exclusions := []string{"docker", "containerd"}

	cases := []struct {
		name string
		want bool
	}{
		{"docker-data", true},
		{"DOCKER-Data", true},
		{"containerd-helper", true},
		{"my-dockerfiles", true},
		{"customer-service-app", false},
		{"backups", false},
	}
	for _, tc := range cases {
		if got := IsExcluded(tc.name, exclusions); got != tc.want {
			t.Errorf("IsExcluded(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatchesProjectPattern(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"my-app-project", true},
		{"customer-service-app", true},
		{"payment-stack", true},
		{"random-notes", false},
		{"backups", false},
	}
	for _, tc := range cases {
		if got := MatchesProjectPattern(tc.name); got != tc.want {
			t.Errorf("MatchesProjectPattern(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestScanWithProjectPatternFilter(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "docker-data", "customer-service-app", "backups")

	candidates, err := Scan(Options{Root: root, RequireProjectPattern: true})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	got := names(candidates)
	if len(got) != 1 || got[0] != "customer-service-app" {
		t.Fatalf("expected only customer-service-app, got %v", got)
	}
}

func TestScanWithoutPatternOffersEverythingUnexcluded(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "random-notes", "containerd-helper", "my-app-project")

	candidates, err := Scan(Options{Root: root})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	got := names(candidates)
	want := []string{"my-app-project", "random-notes"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected lexical order %v, got %v", want, got)
		}
	}
}

func TestScanHonorsExtraExclusions(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "backups", "my-app-project")

	candidates, err := Scan(Options{Root: root, Exclude: []string{"backup"}})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	got := names(candidates)
	if len(got) != 1 || got[0] != "my-app-project" {
		t.Fatalf("expected backups excluded, got %v", got)
	}
}

func TestScanSkipsRegularFiles(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "my-app-project")
	if err := os.WriteFile(filepath.Join(root, "stray-file"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	candidates, err := Scan(Options{Root: root})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if got := names(candidates); len(got) != 1 || got[0] != "my-app-project" {
		t.Fatalf("expected only directories, got %v", got)
	}
}

func TestScanSkipsUnreadableDirectories(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not bind root")
	}
	root := t.TempDir()
	mkdirs(t, root, "my-app-project", "locked-app")
	if err := os.Chmod(filepath.Join(root, "locked-app"), 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(root, "locked-app"), 0o755) })

	candidates, err := Scan(Options{Root: root})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if got := names(candidates); len(got) != 1 || got[0] != "my-app-project" {
		t.Fatalf("expected unreadable dir skipped, got %v", got)
	}
}

func TestScanLabelsSizes(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "my-app-project")
	if err := os.WriteFile(filepath.Join(root, "my-app-project", "data"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	candidates, err := Scan(Options{Root: root})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected one candidate, got %v", candidates)
	}
	if candidates[0].SizeLabel != "5 B" {
		t.Fatalf("unexpected size label: %q", candidates[0].SizeLabel)
	}
}
