package scaffold

import (
	"fmt"
	"sort"
	"strings"

	oerrors "github.com/mvvmkit/cli/internal/errors"
)

// OwnedRoots are the top-level directories the tool owns. Overwrite mode
// deletes these before the creation pass; nothing outside them is ever
// removed.
var OwnedRoots = []string{"app", "src"}

func dir(rel, desc string) ManifestEntry {
	return ManifestEntry{RelPath: rel, Kind: Directory, Description: desc}
}

func static(rel, desc string) ManifestEntry {
	return ManifestEntry{
		RelPath:     rel,
		Kind:        StaticFile,
		Source:      "templates/" + rel + ".tmpl",
		Description: desc,
	}
}

func templated(rel, desc string) ManifestEntry {
	return ManifestEntry{
		RelPath:     rel,
		Kind:        TemplatedFile,
		Source:      "templates/" + rel + ".tmpl",
		Description: desc,
	}
}

// Manifest returns the template manifest in application order: every
// directory precedes its contents. Callers receive a fresh copy.
func Manifest() []ManifestEntry {
	return []ManifestEntry{
		dir("app", "expo-router routing tree"),
		dir("app/(tabs)", "Tab group"),
		dir("src", "Application source"),
		dir("src/components", "Shared view components"),
		dir("src/components/common", "Design-system primitives"),
		dir("src/screens", "Screen views with view models"),
		dir("src/screens/home", "Home screen"),
		dir("src/screens/settings", "Settings screen"),
		dir("src/features", "Feature modules"),
		dir("src/services", "IO and platform services"),
		dir("src/theme", "Design tokens"),
		dir("src/utils", "Pure helpers"),
		dir("src/hooks", "Shared hooks"),
		dir("src/state", "Global state"),

		templated("app/_layout.tsx", "Root stack layout"),
		static("app/index.tsx", "Entry redirect"),
		static("app/(tabs)/_layout.tsx", "Tab bar layout"),
		static("app/(tabs)/index.tsx", "Home tab route"),
		static("app/(tabs)/settings.tsx", "Settings tab route"),

		static("src/components/common/AppText.tsx", "Themed text"),
		static("src/components/common/AppButton.tsx", "Themed button"),
		templated("src/screens/home/HomeScreen.tsx", "Home view"),
		static("src/screens/home/useHomeViewModel.ts", "Home view model"),
		static("src/screens/settings/SettingsScreen.tsx", "Settings view"),
		static("src/screens/settings/useSettingsViewModel.ts", "Settings view model"),
		static("src/services/api.ts", "HTTP client"),
		static("src/services/storage.ts", "Key-value storage"),
		static("src/theme/colors.ts", "Color tokens"),
		static("src/theme/spacing.ts", "Spacing scale"),
		static("src/theme/index.ts", "Theme barrel"),
		static("src/utils/format.ts", "Formatting helpers"),
		static("src/hooks/useAppState.ts", "App state hook"),
		templated("src/state/store.ts", "Zustand store"),
	}
}

// ValidateManifest checks manifest integrity: no traversal or absolute
// paths, no duplicate entries, and every directory listed before any entry
// beneath it. A violation is a bug in the manifest itself and aborts the
// run.
func ValidateManifest(entries []ManifestEntry) error {
	seen := make(map[string]bool, len(entries))
	dirsSeen := make(map[string]bool, len(entries))

	for i, e := range entries {
		if err := checkRelPath(e.RelPath); err != nil {
			return err
		}

		if seen[e.RelPath] {
			return &oerrors.DetailError{
				Type:     "invalid path",
				Message:  fmt.Sprintf("duplicate manifest entry %q", e.RelPath),
				Location: e.RelPath,
				Cause:    oerrors.ErrInvalidPath,
			}
		}
		seen[e.RelPath] = true

		if e.Kind == Directory {
			dirsSeen[e.RelPath] = true
			continue
		}

		// Every ancestor directory that the manifest declares must come
		// before this entry.
		parent := parentPath(e.RelPath)
		for parent != "" {
			if declared := manifestDeclaresDir(entries, parent); declared && !dirsSeen[parent] {
				return &oerrors.DetailError{
					Type:     "invalid path",
					Message:  fmt.Sprintf("entry %d (%s) precedes its directory %s", i, e.RelPath, parent),
					Location: e.RelPath,
					Cause:    oerrors.ErrInvalidPath,
				}
			}
			parent = parentPath(parent)
		}
	}

	return nil
}

func parentPath(rel string) string {
	idx := strings.LastIndex(rel, "/")
	if idx < 0 {
		return ""
	}
	return rel[:idx]
}

func manifestDeclaresDir(entries []ManifestEntry, rel string) bool {
	for _, e := range entries {
		if e.Kind == Directory && e.RelPath == rel {
			return true
		}
	}
	return false
}

// FileDescriptions returns relative path to description for every file
// entry, for tree rendering.
func FileDescriptions() map[string]string {
	out := make(map[string]string)
	for _, e := range Manifest() {
		if e.Kind != Directory {
			out[e.RelPath] = e.Description
		}
	}
	return out
}

// FilePaths returns the sorted relative paths of all file entries.
func FilePaths() []string {
	var out []string
	for _, e := range Manifest() {
		if e.Kind != Directory {
			out = append(out, e.RelPath)
		}
	}
	sort.Strings(out)
	return out
}
