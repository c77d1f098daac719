// Where: internal/app/review_run.go
// What: Interactive review of reclaimable directories.
// Why: Offer leftover project directories for deletion, one at a time.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/poruru/dockfresh/internal/review"
)

// reviewDirectories scans the review root and walks the operator through
// the candidates. The whole stage sits behind one entry confirmation,
// and every candidate gets its own. Nothing here is ever deleted in bulk.
func (r *cleanupRun) reviewDirectories(ctx context.Context) stageResult {
	root := r.deps.ReviewRoot
	if root == "" {
		root = review.Root
	}

	candidates, err := review.Scan(review.Options{
		Root:                  root,
		Exclude:               r.extraExcludes,
		RequireProjectPattern: r.requirePattern,
	})
	if err != nil {
		r.warn(fmt.Sprintf("scan %s: %v", root, err))
		return proceeded()
	}
	if len(candidates) == 0 {
		return proceeded()
	}

	r.console.Header("📂", fmt.Sprintf("Reclaimable directories under %s", root))
	for _, candidate := range candidates {
		r.console.Item(candidate.Name, candidate.SizeLabel)
	}

	enter, err := r.deps.Confirmer.Confirm(fmt.Sprintf("Review these %d directories for deletion?", len(candidates)))
	if err != nil {
		return failed(err)
	}
	if !enter {
		r.console.Info("Skipping directory review")
		return proceeded()
	}

	for _, candidate := range candidates {
		if result := r.reviewCandidate(ctx, candidate); result.err != nil || result.aborted {
			return result
		}
	}
	return proceeded()
}

// reviewCandidate confirms and deletes one directory. An unprivileged
// removal is tried first; a permission failure gets exactly one more
// confirmation before the elevated retry.
func (r *cleanupRun) reviewCandidate(ctx context.Context, candidate review.Candidate) stageResult {
	confirmed, err := r.deps.Confirmer.Confirm(fmt.Sprintf("Delete %s (%s)?", candidate.Path, candidate.SizeLabel))
	if err != nil {
		return failed(err)
	}
	if !confirmed {
		r.console.Info(fmt.Sprintf("Kept %s", candidate.Path))
		return proceeded()
	}

	err = r.deps.Remover.Remove(ctx, candidate.Path, false)
	if err == nil {
		r.console.Success(fmt.Sprintf("Removed %s", candidate.Path))
		return proceeded()
	}
	if !os.IsPermission(err) {
		r.warn(fmt.Sprintf("could not remove %s: %v", candidate.Path, err))
		return proceeded()
	}

	retry, err := r.deps.Confirmer.Confirm(fmt.Sprintf("%s is not writable by you. Delete with sudo?", candidate.Path))
	if err != nil {
		return failed(err)
	}
	if !retry {
		r.console.Info(fmt.Sprintf("Kept %s", candidate.Path))
		return proceeded()
	}

	if err := r.deps.Remover.Remove(ctx, candidate.Path, true); err != nil {
		r.warn(fmt.Sprintf("could not remove %s: %v", candidate.Path, err))
		return proceeded()
	}
	r.console.Success(fmt.Sprintf("Removed %s", candidate.Path))
	return proceeded()
}
