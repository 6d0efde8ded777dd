// Package plan constructs the build graph for one invocation: the static
// library, the sample fan-out, and, on the web target, the Emscripten
// toolchain bridge.
package plan

import (
	"slices"

	"go.hollert.ch/sokforge/internal/core/domain"
	"go.hollert.ch/sokforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request carries everything graph construction needs. The platform,
// backend, and flag set are resolved exactly once by the caller; the
// planner never re-resolves them.
type Request struct {
	Platform domain.Platform
	Backend  domain.Backend
	Flags    domain.FlagSet
	Debug    bool

	// Samples restricts the fan-out. Empty means the full catalog.
	Samples []string

	// EmsdkRoot overrides the default SDK location on the web target.
	EmsdkRoot string
}

// Result is the constructed graph plus the entry points into it.
type Result struct {
	Graph *domain.Graph

	// BuildTargets are the default targets for a plain build: the library
	// plus every sample's final artifact.
	BuildTargets []string

	// RunActions maps "run-<sample>" to the run node of that sample.
	RunActions map[string]string
}

// Planner builds dependency graphs from resolved build parameters.
type Planner struct {
	probe  ports.EnvironmentProbe
	logger ports.Logger
}

// NewPlanner creates a new Planner.
func NewPlanner(probe ports.EnvironmentProbe, logger ports.Logger) *Planner {
	return &Planner{probe: probe, logger: logger}
}

// Plan constructs the build graph for the request.
func (p *Planner) Plan(req Request) (*Result, error) {
	samples, err := selectSamples(req.Samples)
	if err != nil {
		return nil, err
	}

	g := domain.NewGraph()
	res := &Result{
		Graph:      g,
		RunActions: make(map[string]string),
	}

	var sdk *sdkState
	if req.Platform.IsWeb() {
		state, err := resolveSdk(p.probe, req.EmsdkRoot)
		if err != nil {
			return nil, err
		}
		sdk = state
		if err := addBootstrapTasks(g, sdk); err != nil {
			return nil, err
		}
	}

	libName, err := addLibraryTasks(g, req, sdk)
	if err != nil {
		return nil, err
	}
	res.BuildTargets = append(res.BuildTargets, libName)

	for _, sample := range samples {
		target, runName, err := addSampleTasks(g, req, sdk, libName, sample)
		if err != nil {
			return nil, err
		}
		res.BuildTargets = append(res.BuildTargets, target)
		res.RunActions[runName] = runName
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func selectSamples(subset []string) ([]string, error) {
	if len(subset) == 0 {
		return Samples(), nil
	}
	for _, s := range subset {
		if !slices.Contains(sampleCatalog, s) {
			return nil, zerr.With(zerr.New("unknown sample"), "sample", s)
		}
	}
	return subset, nil
}

// nonEmpty filters placeholder entries out of an assembled flag list.
// The assembler keeps fixed positions for reproducible logs; the command
// line must not carry empty arguments.
func nonEmpty(flags []string) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func intern(strs []string) []domain.InternedString {
	return domain.NewInternedStrings(strs)
}
