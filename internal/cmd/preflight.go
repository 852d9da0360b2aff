package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	oerrors "github.com/mvvmkit/cli/internal/errors"
	"github.com/mvvmkit/cli/internal/scaffold"
)

// packageManifest is the subset of package.json the preflight inspects.
type packageManifest struct {
	Name         string            `json:"name"`
	Dependencies map[string]string `json:"dependencies"`
}

// appMetadata is the subset of app.json the preflight inspects.
type appMetadata struct {
	Expo struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"expo"`
}

// validateTarget enforces the generate preconditions: the target contains
// package.json and app.json, and package.json declares an expo dependency.
// On success it derives the template parameters. The engine is never
// invoked when validation fails.
func validateTarget(root string) (scaffold.Params, error) {
	pkgPath := filepath.Join(root, "package.json")
	pkgData, err := os.ReadFile(pkgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return scaffold.Params{}, oerrors.NewPreconditionError(
				"no package.json found in the target directory",
				root,
				"Run mvvmkit inside an existing Expo project, or pass --dir.")
		}
		return scaffold.Params{}, oerrors.Wrap(oerrors.ErrIO, "reading package.json: "+err.Error())
	}

	var pkg packageManifest
	if err := json.Unmarshal(pkgData, &pkg); err != nil {
		return scaffold.Params{}, oerrors.NewPreconditionError(
			"package.json could not be parsed",
			pkgPath,
			"Fix the syntax error and re-run.")
	}

	if _, ok := pkg.Dependencies["expo"]; !ok {
		return scaffold.Params{}, oerrors.NewPreconditionError(
			"package.json does not declare an expo dependency",
			pkgPath,
			"mvvmkit only targets Expo projects; install expo first.")
	}

	appPath := filepath.Join(root, "app.json")
	appData, err := os.ReadFile(appPath)
	if err != nil {
		if os.IsNotExist(err) {
			return scaffold.Params{}, oerrors.NewPreconditionError(
				"no app.json found in the target directory",
				root,
				"Expo projects need an app.json; create one with expo init or npx create-expo-app.")
		}
		return scaffold.Params{}, oerrors.Wrap(oerrors.ErrIO, "reading app.json: "+err.Error())
	}

	var meta appMetadata
	if err := json.Unmarshal(appData, &meta); err != nil {
		return scaffold.Params{}, oerrors.NewPreconditionError(
			"app.json could not be parsed",
			appPath,
			"Fix the syntax error and re-run.")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return scaffold.Params{}, oerrors.Wrap(oerrors.ErrIO, "resolving target path: "+err.Error())
	}

	params := scaffold.Params{
		AppName: meta.Expo.Name,
		Slug:    meta.Expo.Slug,
	}
	if params.AppName == "" {
		params.AppName = pkg.Name
	}
	if params.AppName == "" {
		params.AppName = filepath.Base(abs)
	}
	if params.Slug == "" {
		params.Slug = params.AppName
	}

	return params, nil
}
