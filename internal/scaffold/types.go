// Package scaffold materializes the MVVM project layout into a target
// Expo project. It owns the template manifest, the path resolver, and the
// mode-aware write policy engine.
package scaffold

// Kind classifies a manifest entry.
type Kind int

const (
	// Directory is a directory marker with no content.
	Directory Kind = iota

	// StaticFile is fixed text written verbatim.
	StaticFile

	// TemplatedFile is text rendered with a Params record before writing.
	TemplatedFile
)

// ManifestEntry is one templated path in the generated tree.
type ManifestEntry struct {
	// RelPath is the project-root-relative destination path.
	RelPath string

	// Kind classifies the entry.
	Kind Kind

	// Source is the template body path inside the embedded filesystem.
	// Empty for Directory entries.
	Source string

	// Description is a short human-readable purpose, shown in tree output.
	Description string
}

// WriteMode selects the write policy for a run.
type WriteMode int

const (
	// ModeSkip leaves existing files untouched and creates missing ones.
	ModeSkip WriteMode = iota

	// ModeForce overwrites existing files unconditionally.
	ModeForce

	// ModeOverwrite deletes the owned output roots first, then creates
	// every entry fresh with Force semantics.
	ModeOverwrite
)

// String returns the mode name.
func (m WriteMode) String() string {
	switch m {
	case ModeSkip:
		return "skip"
	case ModeForce:
		return "force"
	case ModeOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// Forces reports whether existing files are overwritten under this mode.
func (m WriteMode) Forces() bool {
	return m == ModeForce || m == ModeOverwrite
}

// Action is the recorded outcome of processing one entry.
type Action string

const (
	ActionCreated     Action = "created"
	ActionSkipped     Action = "skipped"
	ActionOverwritten Action = "overwritten"
	ActionDeleted     Action = "deleted"
	ActionFailed      Action = "failed"
)

// FileOutcome records what happened to one path during a run.
type FileOutcome struct {
	// Path is the project-root-relative path.
	Path string

	// Action is what the engine did.
	Action Action

	// Err is the underlying failure when Action is ActionFailed.
	Err error
}

// Params is the parameter record for templated entries. Rendering depends
// on nothing else, so output is deterministic.
type Params struct {
	// AppName is the display name of the host application.
	AppName string

	// Slug is the URL-safe project identifier.
	Slug string
}
