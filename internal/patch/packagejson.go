package patch

import (
	"path/filepath"

	ojson "github.com/virtuald/go-ordered-json"

	"github.com/mvvmkit/cli/internal/deps"
	oerrors "github.com/mvvmkit/cli/internal/errors"
)

// routerEntry is the package.json "main" value expo-router requires.
const routerEntry = "expo-router/entry"

// PackageJSON merges the required dependency entries and the expo-router
// entry point into the project's package.json. Existing version ranges are
// preserved unless forced; unrelated keys and their order are untouched.
type PackageJSON struct {
	descriptors []deps.Descriptor
}

// NewPackageJSON creates the package.json patcher for a descriptor set.
func NewPackageJSON(descriptors []deps.Descriptor) *PackageJSON {
	return &PackageJSON{descriptors: descriptors}
}

// Name implements Patcher.
func (p *PackageJSON) Name() string { return "package.json" }

// Apply implements Patcher. package.json existence is a precondition
// enforced by the command layer, so an absent file is reported as a
// failure rather than synthesized.
func (p *PackageJSON) Apply(root string, forced bool) Result {
	path := filepath.Join(root, p.Name())

	before, exists, err := readIfExists(path)
	if err != nil {
		return failure(p.Name(), oerrors.Wrap(oerrors.ErrIO, "reading package.json: "+err.Error()), nil)
	}
	if !exists {
		return failure(p.Name(), oerrors.Wrap(oerrors.ErrPrecondition, "package.json not found"), nil)
	}

	doc, err := decodeOrdered(before)
	if err != nil {
		return failure(p.Name(), oerrors.NewMalformedConfigError(p.Name(), err), before)
	}

	dirty := false

	if current, _ := getString(doc, "main"); current != routerEntry && (forced || memberIndex(doc, "main") < 0) {
		doc = setMember(doc, "main", routerEntry)
		dirty = true
	}

	doc, changed := p.mergeScope(doc, "dependencies", deps.ScopeRuntime, forced)
	dirty = dirty || changed
	doc, changed = p.mergeScope(doc, "devDependencies", deps.ScopeDevelopment, forced)
	dirty = dirty || changed

	if !dirty {
		return unchanged(p.Name(), before)
	}

	after, err := encodeOrdered(doc)
	if err != nil {
		return failure(p.Name(), oerrors.Wrap(oerrors.ErrIO, "encoding package.json: "+err.Error()), before)
	}

	return writeResult(p.Name(), path, before, after, true)
}

// mergeScope merges descriptors of one scope into the named section,
// creating the section when absent.
func (p *PackageJSON) mergeScope(doc ojson.OrderedObject, section string, scope deps.Scope, forced bool) (ojson.OrderedObject, bool) {
	entries, ok := getObject(doc, section)
	if !ok {
		entries = ojson.OrderedObject{}
	}

	changed := false
	for _, d := range p.descriptors {
		if d.Scope != scope {
			continue
		}
		if i := memberIndex(entries, d.Name); i >= 0 {
			if forced && entries[i].Value != d.Version {
				entries[i].Value = d.Version
				changed = true
			}
			continue
		}
		entries = append(entries, ojson.Member{Key: d.Name, Value: d.Version})
		changed = true
	}

	if !changed {
		return doc, false
	}
	return setMember(doc, section, entries), true
}
