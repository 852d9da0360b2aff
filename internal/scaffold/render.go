package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

// templateFS holds the scaffold file bodies. The all: prefix keeps files
// whose names start with underscores (expo-router layouts) in the tree.
//
//go:embed all:templates
var templateFS embed.FS

// RenderEntry produces the content for a file entry. Static bodies are
// returned verbatim; templated bodies are executed against params. Calling
// this for a Directory entry is a programming error.
func RenderEntry(e ManifestEntry, params Params) ([]byte, error) {
	if e.Kind == Directory {
		return nil, fmt.Errorf("entry %s is a directory, not a file", e.RelPath)
	}

	content, err := templateFS.ReadFile(e.Source)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", e.Source, err)
	}

	if e.Kind == StaticFile {
		return content, nil
	}

	tmpl, err := template.New(e.RelPath).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", e.Source, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", e.Source, err)
	}

	return buf.Bytes(), nil
}
