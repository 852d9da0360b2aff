package patch

import (
	"os"
	"path/filepath"
	"strings"

	ojson "github.com/virtuald/go-ordered-json"

	oerrors "github.com/mvvmkit/cli/internal/errors"
)

// assetKeyPaths are the app.json keys (under "expo") that reference asset
// files on disk. A reference to a missing file breaks the Expo build, so
// dangling entries are removed. This is a fixed rule set, not a generic
// content rewrite.
var assetKeyPaths = [][]string{
	{"icon"},
	{"splash", "image"},
	{"android", "adaptiveIcon", "foregroundImage"},
	{"android", "adaptiveIcon", "backgroundImage"},
	{"web", "favicon"},
	{"notification", "icon"},
}

// AppJSON removes dangling asset references from the project metadata file.
type AppJSON struct{}

// NewAppJSON creates the app.json patcher.
func NewAppJSON() *AppJSON { return &AppJSON{} }

// Name implements Patcher.
func (p *AppJSON) Name() string { return "app.json" }

// Apply implements Patcher. app.json existence is a precondition enforced
// by the command layer.
func (p *AppJSON) Apply(root string, forced bool) Result {
	path := filepath.Join(root, p.Name())

	before, exists, err := readIfExists(path)
	if err != nil {
		return failure(p.Name(), oerrors.Wrap(oerrors.ErrIO, "reading app.json: "+err.Error()), nil)
	}
	if !exists {
		return failure(p.Name(), oerrors.Wrap(oerrors.ErrPrecondition, "app.json not found"), nil)
	}

	doc, err := decodeOrdered(before)
	if err != nil {
		return failure(p.Name(), oerrors.NewMalformedConfigError(p.Name(), err), before)
	}

	dirty := false
	expo, ok := getObject(doc, "expo")
	if ok {
		for _, keyPath := range assetKeyPaths {
			var removed bool
			expo, removed = removeDangling(expo, root, keyPath)
			dirty = dirty || removed
		}
		doc = setMember(doc, "expo", expo)
	}

	if !dirty {
		return unchanged(p.Name(), before)
	}

	after, err := encodeOrdered(doc)
	if err != nil {
		return failure(p.Name(), oerrors.Wrap(oerrors.ErrIO, "encoding app.json: "+err.Error()), before)
	}

	return writeResult(p.Name(), path, before, after, true)
}

// removeDangling walks keyPath inside obj and removes the leaf member when
// it names an asset file that does not exist under root.
func removeDangling(obj ojson.OrderedObject, root string, keyPath []string) (ojson.OrderedObject, bool) {
	if len(keyPath) == 1 {
		ref, ok := getString(obj, keyPath[0])
		if !ok || assetExists(root, ref) {
			return obj, false
		}
		return removeMember(obj, keyPath[0])
	}

	i := memberIndex(obj, keyPath[0])
	if i < 0 {
		return obj, false
	}
	child, ok := obj[i].Value.(ojson.OrderedObject)
	if !ok {
		return obj, false
	}

	child, removed := removeDangling(child, root, keyPath[1:])
	obj[i].Value = child
	return obj, removed
}

// assetExists checks an app.json asset reference against the disk.
func assetExists(root, ref string) bool {
	rel := strings.TrimPrefix(ref, "./")
	if rel == "" || filepath.IsAbs(rel) {
		// Absolute or empty references are left alone; they are not the
		// relative asset paths this rule targets.
		return true
	}
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}
