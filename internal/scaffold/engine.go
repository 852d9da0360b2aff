package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	oerrors "github.com/mvvmkit/cli/internal/errors"
	"github.com/mvvmkit/cli/internal/output"
)

// Engine applies the template manifest to a target project root under a
// single write mode. Configuration is fixed at construction; an Engine has
// no mutable state beyond the target filesystem.
//
// The engine assumes it is the sole writer under the owned roots for the
// duration of Apply; concurrent external mutation is unsupported.
type Engine struct {
	root     string
	mode     WriteMode
	params   Params
	manifest []ManifestEntry
}

// NewEngine creates an engine for the given project root, mode, and
// template parameters, using the built-in manifest.
func NewEngine(root string, mode WriteMode, params Params) *Engine {
	return &Engine{
		root:     root,
		mode:     mode,
		params:   params,
		manifest: Manifest(),
	}
}

// NewEngineWithManifest creates an engine with an explicit manifest.
// Used by tests to exercise failure paths.
func NewEngineWithManifest(root string, mode WriteMode, params Params, manifest []ManifestEntry) *Engine {
	return &Engine{
		root:     root,
		mode:     mode,
		params:   params,
		manifest: manifest,
	}
}

// Apply runs the full materialization: an optional deletion pass over the
// owned roots (Overwrite mode), then one outcome per manifest entry in
// manifest order. Per-entry failures are recorded, never thrown; the run
// completes unless the manifest itself is invalid or ctx is cancelled.
func (e *Engine) Apply(ctx context.Context) (*Report, error) {
	if err := ValidateManifest(e.manifest); err != nil {
		return nil, err
	}

	report := NewReport()

	if e.mode == ModeOverwrite {
		e.cleanOwnedRoots(report)
	}

	for _, entry := range e.manifest {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Add(e.applyEntry(entry))
	}

	return report, nil
}

// cleanOwnedRoots deletes each owned top-level directory that exists,
// recording one Deleted outcome per removed root. Failures are recorded
// and the pass continues.
func (e *Engine) cleanOwnedRoots(report *Report) {
	for _, root := range OwnedRoots {
		res, err := Resolve(e.root, root)
		if err != nil {
			report.Add(FileOutcome{Path: root, Action: ActionFailed, Err: err})
			continue
		}
		if !res.Exists {
			continue
		}

		output.Debug("removing owned root", "path", root)
		if err := os.RemoveAll(res.Abs); err != nil {
			report.Add(FileOutcome{
				Path:   root,
				Action: ActionFailed,
				Err:    oerrors.Wrap(oerrors.ErrIO, "removing "+root+": "+err.Error()),
			})
			continue
		}
		report.Add(FileOutcome{Path: root, Action: ActionDeleted})
	}
}

// applyEntry processes one manifest entry and returns its outcome.
func (e *Engine) applyEntry(entry ManifestEntry) FileOutcome {
	res, err := Resolve(e.root, entry.RelPath)
	if err != nil {
		return FileOutcome{Path: entry.RelPath, Action: ActionFailed, Err: err}
	}

	if entry.Kind == Directory {
		return e.applyDirectory(entry, res)
	}
	return e.applyFile(entry, res)
}

func (e *Engine) applyDirectory(entry ManifestEntry, res Resolution) FileOutcome {
	if res.Exists {
		if !res.IsDir {
			return FileOutcome{
				Path:   entry.RelPath,
				Action: ActionFailed,
				Err:    oerrors.NewTypeConflictError(entry.RelPath, true),
			}
		}
		return FileOutcome{Path: entry.RelPath, Action: ActionSkipped}
	}

	if err := os.MkdirAll(res.Abs, 0o755); err != nil {
		return FileOutcome{
			Path:   entry.RelPath,
			Action: ActionFailed,
			Err:    oerrors.Wrap(oerrors.ErrIO, "creating "+entry.RelPath+": "+err.Error()),
		}
	}
	return FileOutcome{Path: entry.RelPath, Action: ActionCreated}
}

func (e *Engine) applyFile(entry ManifestEntry, res Resolution) FileOutcome {
	if res.Exists && res.IsDir {
		return FileOutcome{
			Path:   entry.RelPath,
			Action: ActionFailed,
			Err:    oerrors.NewTypeConflictError(entry.RelPath, false),
		}
	}

	if res.Exists && !e.mode.Forces() {
		return FileOutcome{Path: entry.RelPath, Action: ActionSkipped}
	}

	content, err := RenderEntry(entry, e.params)
	if err != nil {
		return FileOutcome{
			Path:   entry.RelPath,
			Action: ActionFailed,
			Err:    oerrors.Wrap(oerrors.ErrIO, "rendering "+entry.RelPath+": "+err.Error()),
		}
	}

	if err := os.MkdirAll(filepath.Dir(res.Abs), 0o755); err != nil {
		return FileOutcome{
			Path:   entry.RelPath,
			Action: ActionFailed,
			Err:    oerrors.Wrap(oerrors.ErrIO, "creating parent for "+entry.RelPath+": "+err.Error()),
		}
	}

	if err := os.WriteFile(res.Abs, content, 0o644); err != nil {
		return FileOutcome{
			Path:   entry.RelPath,
			Action: ActionFailed,
			Err:    oerrors.Wrap(oerrors.ErrIO, "writing "+entry.RelPath+": "+err.Error()),
		}
	}

	action := ActionCreated
	if res.Exists {
		action = ActionOverwritten
	}
	output.Debug("wrote file", "path", entry.RelPath, "action", string(action))
	return FileOutcome{Path: entry.RelPath, Action: action}
}

// IsFatal reports whether an Apply error is a manifest-integrity failure
// rather than a cancellation.
func IsFatal(err error) bool {
	return errors.Is(err, oerrors.ErrInvalidPath)
}
