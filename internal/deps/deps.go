// Package deps resolves the npm packages the generated code depends on.
// It is a pure function of the tool's feature set and never touches disk,
// network, or a package manager; acting on the descriptors is the caller's
// decision.
package deps

// Scope distinguishes runtime from development dependencies.
type Scope string

const (
	// ScopeRuntime is a production dependency.
	ScopeRuntime Scope = "runtime"

	// ScopeDevelopment is a development-only dependency.
	ScopeDevelopment Scope = "development"
)

// Descriptor names one package the target project must declare.
type Descriptor struct {
	// Name is the npm package name.
	Name string `json:"name" yaml:"name"`

	// Version is the semver range to add when the package is missing.
	Version string `json:"version" yaml:"version"`

	// Scope is runtime or development.
	Scope Scope `json:"scope" yaml:"scope"`
}

// Required returns the descriptor set for the generated code: routing,
// navigation, gestures, animation, icons, state, and type-checking.
// Stable order: runtime first, then development, alphabetical within each.
func Required() []Descriptor {
	return []Descriptor{
		{Name: "@expo/vector-icons", Version: "^14.0.0", Scope: ScopeRuntime},
		{Name: "expo-router", Version: "~4.0.0", Scope: ScopeRuntime},
		{Name: "react-native-gesture-handler", Version: "~2.20.0", Scope: ScopeRuntime},
		{Name: "react-native-reanimated", Version: "~3.16.0", Scope: ScopeRuntime},
		{Name: "react-native-safe-area-context", Version: "~4.12.0", Scope: ScopeRuntime},
		{Name: "react-native-screens", Version: "~4.4.0", Scope: ScopeRuntime},
		{Name: "zustand", Version: "^5.0.0", Scope: ScopeRuntime},
		{Name: "@types/react", Version: "~18.3.0", Scope: ScopeDevelopment},
		{Name: "typescript", Version: "^5.3.0", Scope: ScopeDevelopment},
	}
}

// Runtime returns only the runtime-scoped descriptors.
func Runtime() []Descriptor {
	return filter(ScopeRuntime)
}

// Development returns only the development-scoped descriptors.
func Development() []Descriptor {
	return filter(ScopeDevelopment)
}

func filter(scope Scope) []Descriptor {
	var out []Descriptor
	for _, d := range Required() {
		if d.Scope == scope {
			out = append(out, d)
		}
	}
	return out
}
