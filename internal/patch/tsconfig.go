package patch

import (
	"path/filepath"

	ojson "github.com/virtuald/go-ordered-json"

	oerrors "github.com/mvvmkit/cli/internal/errors"
)

// srcAlias is the import alias the generated code uses for src/.
const (
	srcAliasKey   = "@/*"
	srcAliasValue = "./src/*"
)

// defaultTSConfig is synthesized when the project has no tsconfig.json.
const defaultTSConfig = `{
  "extends": "expo/tsconfig.base",
  "compilerOptions": {
    "strict": true,
    "baseUrl": ".",
    "paths": {
      "@/*": ["./src/*"]
    }
  }
}
`

// TSConfig creates tsconfig.json when absent and otherwise merges the
// baseUrl and path-alias entries the generated imports rely on.
type TSConfig struct{}

// NewTSConfig creates the tsconfig.json patcher.
func NewTSConfig() *TSConfig { return &TSConfig{} }

// Name implements Patcher.
func (p *TSConfig) Name() string { return "tsconfig.json" }

// Apply implements Patcher.
func (p *TSConfig) Apply(root string, forced bool) Result {
	path := filepath.Join(root, p.Name())

	before, exists, err := readIfExists(path)
	if err != nil {
		return failure(p.Name(), oerrors.Wrap(oerrors.ErrIO, "reading tsconfig.json: "+err.Error()), nil)
	}
	if !exists {
		return writeResult(p.Name(), path, nil, []byte(defaultTSConfig), false)
	}

	doc, err := decodeOrdered(before)
	if err != nil {
		return failure(p.Name(), oerrors.NewMalformedConfigError(p.Name(), err), before)
	}

	dirty := false

	opts, ok := getObject(doc, "compilerOptions")
	if !ok {
		opts = ojson.OrderedObject{}
	}

	if base, _ := getString(opts, "baseUrl"); base != "." && (forced || memberIndex(opts, "baseUrl") < 0) {
		opts = setMember(opts, "baseUrl", ".")
		dirty = true
	}

	paths, ok := getObject(opts, "paths")
	if !ok {
		paths = ojson.OrderedObject{}
	}
	if forced || memberIndex(paths, srcAliasKey) < 0 {
		if !aliasSatisfied(paths) {
			paths = setMember(paths, srcAliasKey, []interface{}{srcAliasValue})
			dirty = true
		}
	}

	if !dirty {
		return unchanged(p.Name(), before)
	}

	opts = setMember(opts, "paths", paths)
	doc = setMember(doc, "compilerOptions", opts)

	after, err := encodeOrdered(doc)
	if err != nil {
		return failure(p.Name(), oerrors.Wrap(oerrors.ErrIO, "encoding tsconfig.json: "+err.Error()), before)
	}

	return writeResult(p.Name(), path, before, after, true)
}

// aliasSatisfied reports whether the @/* alias is already mapped to src.
func aliasSatisfied(paths ojson.OrderedObject) bool {
	i := memberIndex(paths, srcAliasKey)
	if i < 0 {
		return false
	}
	values, ok := paths[i].Value.([]interface{})
	if !ok {
		return false
	}
	for _, v := range values {
		if s, ok := v.(string); ok && (s == srcAliasValue || s == "src/*") {
			return true
		}
	}
	return false
}
