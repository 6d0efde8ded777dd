package plan

import (
	"path/filepath"

	"go.hollert.ch/sokforge/internal/core/domain"
	"go.hollert.ch/sokforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// ErrSdkUnavailable is returned when the Emscripten SDK root cannot be
// resolved and no system-installed emsdk is found. The web subgraph cannot
// be built without it.
var ErrSdkUnavailable = zerr.New("emscripten sdk unavailable")

// DefaultEmsdkRoot is the SDK location used when the configuration does not
// override it.
const DefaultEmsdkRoot = "emsdk"

const (
	installTaskName  = "emsdk:install"
	activateTaskName = "emsdk:activate"

	// sdkVersion is the version keyword passed to install and activate.
	sdkVersion = "latest"
)

// sdkState is the resolved view of the Emscripten installation used during
// graph construction. The marker file is the persisted installation state:
// present means bootstrap already ran on this machine.
//
// Concurrent first-time builds racing to install on one machine are a
// documented limitation; the check-then-act sequence is single-writer.
type sdkState struct {
	root           string
	installed      bool
	emsdkCmd       string
	toolDir        string
	sysrootInclude string
}

// resolveSdk probes the SDK installation once per invocation.
func resolveSdk(probe ports.EnvironmentProbe, root string) (*sdkState, error) {
	if root == "" {
		root = DefaultEmsdkRoot
	}

	state := &sdkState{
		root:           root,
		installed:      probe.FileExists(filepath.Join(root, ".emscripten")),
		toolDir:        filepath.Join(root, "upstream", "emscripten"),
		sysrootInclude: filepath.Join(root, "upstream", "emscripten", "cache", "sysroot", "include"),
	}

	script := filepath.Join(root, "emsdk")
	if probe.HostOS() == "windows" {
		script = filepath.Join(root, "emsdk.bat")
	}
	switch {
	case probe.FileExists(script):
		state.emsdkCmd = script
	default:
		// No bundled SDK script; fall back to a system-wide install.
		if found, err := probe.LookPath("emsdk"); err == nil {
			state.emsdkCmd = found
		} else if !state.installed {
			return nil, zerr.With(ErrSdkUnavailable, "root", root)
		}
	}

	return state, nil
}

// taskEnv puts the SDK tools first on PATH so emcc/emar/emrun resolve to
// this installation.
func (s *sdkState) taskEnv() map[string]string {
	return map[string]string{
		"PATH":  s.toolDir,
		"EMSDK": s.root,
	}
}

// bootstrapDeps names the bootstrap tasks a web node must wait for.
// Empty when the marker is already present.
func (s *sdkState) bootstrapDeps() []string {
	if s.installed {
		return nil
	}
	return []string{activateTaskName}
}

// addBootstrapTasks adds the one-time install and activate nodes. When the
// installation marker is already present the bootstrap is a no-op and is
// omitted from the graph entirely.
func addBootstrapTasks(g *domain.Graph, sdk *sdkState) error {
	if sdk.installed {
		return nil
	}

	install := &domain.Task{
		Name:    domain.NewInternedString(installTaskName),
		Kind:    domain.ActionInstall,
		Command: []string{sdk.emsdkCmd, "install", sdkVersion},
	}
	if err := g.AddTask(install); err != nil {
		return err
	}

	activate := &domain.Task{
		Name:         domain.NewInternedString(activateTaskName),
		Kind:         domain.ActionInstall,
		Command:      []string{sdk.emsdkCmd, "activate", sdkVersion},
		Dependencies: intern([]string{installTaskName}),
	}
	return g.AddTask(activate)
}

// addWebSampleTasks declares a secondary static artifact for the sample's
// compiled unit and routes it into the Emscripten link and run pair.
func addWebSampleTasks(g *domain.Graph, req Request, sdk *sdkState, libName, sample, compileName, obj string) (string, string, error) {
	sampleLib := filepath.Join(webDir, sample+".a")
	bundle := filepath.Join(webDir, sample+".html")

	weblibName := "weblib:" + sample
	weblib := &domain.Task{
		Name:         domain.NewInternedString(weblibName),
		Kind:         domain.ActionLink,
		Command:      []string{archiverFor(req.Platform), "rcs", sampleLib, obj},
		Environment:  sdk.taskEnv(),
		Inputs:       intern([]string{obj}),
		Outputs:      intern([]string{sampleLib}),
		Dependencies: intern([]string{compileName}),
		Cacheable:    true,
	}
	if err := g.AddTask(weblib); err != nil {
		return "", "", err
	}

	weblinkName := "weblink:" + sample
	weblink := &domain.Task{
		Name:         domain.NewInternedString(weblinkName),
		Kind:         domain.ActionLink,
		Command:      emLinkCommand(req, sampleLib, bundle),
		Environment:  sdk.taskEnv(),
		Inputs:       intern([]string{libArtifact, sampleLib, shellFile}),
		Outputs:      intern([]string{bundle}),
		Dependencies: intern(append([]string{libName, weblibName}, sdk.bootstrapDeps()...)),
		Cacheable:    true,
	}
	if err := g.AddTask(weblink); err != nil {
		return "", "", err
	}

	runName := "run-" + sample
	run := &domain.Task{
		Name:         domain.NewInternedString(runName),
		Kind:         domain.ActionRun,
		Command:      []string{"emrun", bundle},
		Environment:  sdk.taskEnv(),
		Inputs:       intern([]string{bundle}),
		Dependencies: intern([]string{weblinkName}),
	}
	if err := g.AddTask(run); err != nil {
		return "", "", err
	}

	return weblinkName, runName, nil
}

// emLinkCommand builds the Emscripten link invocation: both static
// artifacts as positional inputs, the optimization level for the build
// mode, and the fixed size/behavior flags.
func emLinkCommand(req Request, sampleLib, bundle string) []string {
	opt := "-Oz"
	if req.Debug {
		opt = "-Og"
	}
	return []string{
		"emcc",
		libArtifact,
		sampleLib,
		opt,
		"-sNO_FILESYSTEM=1",
		"-sMALLOC=emmalloc",
		"-sASSERTIONS=0",
		"-sERROR_ON_UNDEFINED_SYMBOLS=0",
		"--shell-file", shellFile,
		"-sUSE_WEBGL2=1",
		"-o", bundle,
	}
}
