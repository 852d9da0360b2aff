package patch

import (
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/mvvmkit/cli/internal/errors"
)

// reanimatedPlugin must be registered in the babel config, and last in the
// plugin list, for react-native-reanimated to work.
const reanimatedPlugin = "react-native-reanimated/plugin"

// defaultBabelConfig is synthesized when the project has no babel config.
const defaultBabelConfig = `module.exports = function (api) {
  api.cache(true);
  return {
    presets: ['babel-preset-expo'],
    plugins: ['react-native-reanimated/plugin'],
  };
};
`

// Babel registers the reanimated plugin in babel.config.js. The file is a
// script, not a data document, so the patcher only edits shapes it can
// recognize: a module.exports with a presets or plugins array. Anything
// else is reported as malformed and left untouched.
type Babel struct{}

// NewBabel creates the babel.config.js patcher.
func NewBabel() *Babel { return &Babel{} }

// Name implements Patcher.
func (p *Babel) Name() string { return "babel.config.js" }

// Apply implements Patcher.
func (p *Babel) Apply(root string, forced bool) Result {
	path := filepath.Join(root, p.Name())

	before, exists, err := readIfExists(path)
	if err != nil {
		return failure(p.Name(), oerrors.Wrap(oerrors.ErrIO, "reading babel.config.js: "+err.Error()), nil)
	}
	if !exists {
		return writeResult(p.Name(), path, nil, []byte(defaultBabelConfig), false)
	}

	content := string(before)

	if strings.Contains(content, reanimatedPlugin) {
		return unchanged(p.Name(), before)
	}

	if !strings.Contains(content, "module.exports") {
		return failure(p.Name(),
			oerrors.NewMalformedConfigError(p.Name(), fmt.Errorf("no module.exports found")), before)
	}

	patched, err := insertPlugin(content)
	if err != nil {
		return failure(p.Name(), oerrors.NewMalformedConfigError(p.Name(), err), before)
	}

	return writeResult(p.Name(), path, before, []byte(patched), true)
}

// insertPlugin adds the reanimated plugin to the config text: appended to
// an existing plugins array, or as a new plugins entry after the presets
// array.
func insertPlugin(content string) (string, error) {
	if open, closing, ok := findArray(content, "plugins"); ok {
		inner := strings.TrimRight(strings.TrimSpace(content[open+1:closing]), ",")
		if inner == "" {
			inner = "'" + reanimatedPlugin + "'"
		} else {
			inner += ", '" + reanimatedPlugin + "'"
		}
		return content[:open+1] + inner + content[closing:], nil
	}

	_, closing, ok := findArray(content, "presets")
	if !ok {
		return "", fmt.Errorf("no presets or plugins array found")
	}

	insertAt := closing + 1
	entry := ",\n    plugins: ['" + reanimatedPlugin + "']"
	if insertAt < len(content) && content[insertAt] == ',' {
		insertAt++
		entry = "\n    plugins: ['" + reanimatedPlugin + "'],"
	}
	return content[:insertAt] + entry + content[insertAt:], nil
}

// findArray locates `key: [ ... ]` and returns the bracket positions.
func findArray(content, key string) (open, closing int, ok bool) {
	idx := strings.Index(content, key)
	if idx < 0 {
		return 0, 0, false
	}

	rest := content[idx+len(key):]
	trimmed := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(trimmed, ":") {
		return 0, 0, false
	}
	trimmed = strings.TrimLeft(trimmed[1:], " \t\n")
	if !strings.HasPrefix(trimmed, "[") {
		return 0, 0, false
	}

	open = len(content) - len(trimmed)
	depth := 0
	for i := open; i < len(content); i++ {
		switch content[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return open, i, true
			}
		}
	}
	return 0, 0, false
}
