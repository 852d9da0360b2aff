// Package patch edits the target project's configuration files with
// conservative merge semantics: required keys are added when missing,
// user-supplied values are replaced only when forced, and a document that
// cannot be parsed is never touched.
package patch

import (
	"bytes"
	"os"
	"path/filepath"

	oerrors "github.com/mvvmkit/cli/internal/errors"
	"github.com/mvvmkit/cli/internal/scaffold"
)

// Result is the outcome of applying one patcher.
type Result struct {
	// Changed reports whether the file on disk was modified or created.
	// Re-applying a patch to its own output yields Changed == false.
	Changed bool

	// Outcome is the report entry for this file.
	Outcome scaffold.FileOutcome

	// Before and After hold the document bytes for diff rendering.
	// Before is empty when the file did not exist.
	Before []byte
	After  []byte
}

// Patcher edits one configuration file in the target project.
type Patcher interface {
	// Name is the project-relative file name, e.g. "package.json".
	Name() string

	// Apply loads, merges, and writes back the file under root. All
	// failures are captured in the result, never returned.
	Apply(root string, forced bool) Result
}

// ApplyAll runs every patcher in order and appends each outcome to the
// report. Per-file failures do not stop the remaining patchers.
func ApplyAll(patchers []Patcher, root string, forced bool, report *scaffold.Report) []Result {
	results := make([]Result, 0, len(patchers))
	for _, p := range patchers {
		res := p.Apply(root, forced)
		report.Add(res.Outcome)
		results = append(results, res)
	}
	return results
}

// readIfExists reads path, distinguishing absence from read failure.
func readIfExists(path string) (data []byte, exists bool, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, true, err
	}
	return data, true, nil
}

// writeResult finishes a patch: it writes after to path only when it
// differs from before, and builds the outcome.
func writeResult(name, path string, before, after []byte, existed bool) Result {
	if existed && bytes.Equal(before, after) {
		return Result{
			Changed: false,
			Outcome: scaffold.FileOutcome{Path: name, Action: scaffold.ActionSkipped},
			Before:  before,
			After:   after,
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return failure(name, oerrors.Wrap(oerrors.ErrIO, "creating parent for "+name+": "+err.Error()), before)
	}
	if err := os.WriteFile(path, after, 0o644); err != nil {
		return failure(name, oerrors.Wrap(oerrors.ErrIO, "writing "+name+": "+err.Error()), before)
	}

	action := scaffold.ActionCreated
	if existed {
		action = scaffold.ActionOverwritten
	}
	return Result{
		Changed: true,
		Outcome: scaffold.FileOutcome{Path: name, Action: action},
		Before:  before,
		After:   after,
	}
}

// unchanged reports an already-satisfied patch without touching the file.
func unchanged(name string, before []byte) Result {
	return Result{
		Changed: false,
		Outcome: scaffold.FileOutcome{Path: name, Action: scaffold.ActionSkipped},
		Before:  before,
		After:   before,
	}
}

func failure(name string, err error, before []byte) Result {
	return Result{
		Outcome: scaffold.FileOutcome{Path: name, Action: scaffold.ActionFailed, Err: err},
		Before:  before,
	}
}
