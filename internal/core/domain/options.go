package domain

// BuildOptions are the top-level configuration for one build invocation,
// loaded from sokforge.yaml and overridden by CLI flags. They are pure
// inputs to backend resolution and flag assembly; no other component reads
// raw configuration.
type BuildOptions struct {
	// Target is the raw target triple. Empty fields default to the host.
	Target Triple

	// Backend is the requested backend, RequestAuto by default.
	Backend BackendRequest

	// Toggles are the feature toggles threaded through flag assembly.
	Toggles FeatureToggles

	// Debug builds with debug optimization settings.
	Debug bool

	// Samples restricts the sample fan-out to a subset. Empty means all.
	Samples []string

	// EmsdkRoot overrides the default Emscripten SDK location.
	EmsdkRoot string
}
