// Where: internal/app/stage.go
// What: Pipeline stage results and the orchestrator check.
// Why: Make aborted/failed/proceeded explicit instead of bare error returns.
package app

import (
	"fmt"
	"io"
)

// stageResult is the outcome of one pipeline stage. A stage either
// proceeded, was aborted by the operator, or failed with an error.
type stageResult struct {
	aborted bool
	err     error
}

func proceeded() stageResult {
	return stageResult{}
}

func aborted() stageResult {
	return stageResult{aborted: true}
}

func failed(err error) stageResult {
	return stageResult{err: err}
}

// advance inspects a stage result. An abort ends the run cleanly with
// exit 0, a failure with exit 1; otherwise the pipeline continues.
func advance(out io.Writer, result stageResult) (int, bool) {
	if result.aborted {
		fmt.Fprintln(out, "Aborted.")
		return 0, false
	}
	if result.err != nil {
		return exitWithError(out, result.err), false
	}
	return 0, true
}
