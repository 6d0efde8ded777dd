package plan_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.hollert.ch/sokforge/internal/core/domain"
	"go.hollert.ch/sokforge/internal/plan"
)

func webRequest(samples ...string) plan.Request {
	flags, err := domain.AssembleFlagSet(domain.PlatformWeb, domain.BackendGLES3, domain.DefaultToggles())
	if err != nil {
		panic(err)
	}
	return plan.Request{
		Platform: domain.PlatformWeb,
		Backend:  domain.BackendGLES3,
		Flags:    flags,
		Samples:  samples,
	}
}

func TestPlan_WebBootstrapOmittedWhenInstalled(t *testing.T) {
	files := map[string]bool{
		filepath.Join("emsdk", ".emscripten"): true,
		filepath.Join("emsdk", "emsdk"):       true,
	}
	p := plan.NewPlanner(newProbe(t, files, nil, "linux", "amd64"), newLogger(t))

	res, err := p.Plan(webRequest("clear"))
	require.NoError(t, err)

	// The marker file means bootstrap already ran; neither node exists.
	_, err = res.Graph.Task(domain.NewInternedString("emsdk:install"))
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = res.Graph.Task(domain.NewInternedString("emsdk:activate"))
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	weblink, err := res.Graph.Task(domain.NewInternedString("weblink:clear"))
	require.NoError(t, err)
	assert.NotContains(t, weblink.Dependencies, domain.NewInternedString("emsdk:activate"))
}

func TestPlan_WebBootstrapFromBundledScript(t *testing.T) {
	files := map[string]bool{
		filepath.Join("emsdk", "emsdk"): true,
	}
	p := plan.NewPlanner(newProbe(t, files, nil, "linux", "amd64"), newLogger(t))

	res, err := p.Plan(webRequest("clear"))
	require.NoError(t, err)

	install, err := res.Graph.Task(domain.NewInternedString("emsdk:install"))
	require.NoError(t, err)
	assert.Equal(t, domain.ActionInstall, install.Kind)
	assert.Equal(t, []string{filepath.Join("emsdk", "emsdk"), "install", "latest"}, install.Command)
	assert.False(t, install.Cacheable)

	activate, err := res.Graph.Task(domain.NewInternedString("emsdk:activate"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("emsdk", "emsdk"), "activate", "latest"}, activate.Command)
	assert.Equal(t, []domain.InternedString{domain.NewInternedString("emsdk:install")}, activate.Dependencies)

	// Every compile node and the final link wait for the activation.
	compile, err := res.Graph.Task(domain.NewInternedString("compile:sokol_gfx"))
	require.NoError(t, err)
	assert.Contains(t, compile.Dependencies, domain.NewInternedString("emsdk:activate"))

	weblink, err := res.Graph.Task(domain.NewInternedString("weblink:clear"))
	require.NoError(t, err)
	assert.Contains(t, weblink.Dependencies, domain.NewInternedString("emsdk:activate"))
}

func TestPlan_WebBootstrapFromSystemPath(t *testing.T) {
	p := plan.NewPlanner(newProbe(t, nil, map[string]string{"emsdk": "/usr/local/bin/emsdk"}, "linux", "amd64"), newLogger(t))

	res, err := p.Plan(webRequest("clear"))
	require.NoError(t, err)

	install, err := res.Graph.Task(domain.NewInternedString("emsdk:install"))
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/emsdk", install.Command[0])
}

func TestPlan_WebSdkUnavailable(t *testing.T) {
	p := plan.NewPlanner(newProbe(t, nil, nil, "linux", "amd64"), newLogger(t))

	_, err := p.Plan(webRequest("clear"))
	assert.ErrorIs(t, err, plan.ErrSdkUnavailable)
}

func TestPlan_WebWindowsHostUsesBatchScript(t *testing.T) {
	files := map[string]bool{
		filepath.Join("emsdk", "emsdk.bat"): true,
	}
	p := plan.NewPlanner(newProbe(t, files, nil, "windows", "amd64"), newLogger(t))

	res, err := p.Plan(webRequest("clear"))
	require.NoError(t, err)

	install, err := res.Graph.Task(domain.NewInternedString("emsdk:install"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("emsdk", "emsdk.bat"), install.Command[0])
}

func TestPlan_WebCompileUsesSysrootAndEnv(t *testing.T) {
	files := map[string]bool{
		filepath.Join("emsdk", ".emscripten"): true,
		filepath.Join("emsdk", "emsdk"):       true,
	}
	p := plan.NewPlanner(newProbe(t, files, nil, "linux", "amd64"), newLogger(t))

	res, err := p.Plan(webRequest("clear"))
	require.NoError(t, err)

	compile, err := res.Graph.Task(domain.NewInternedString("compile:clear"))
	require.NoError(t, err)
	assert.Equal(t, "emcc", compile.Command[0])
	assert.Contains(t, compile.Command, filepath.Join("emsdk", "upstream", "emscripten", "cache", "sysroot", "include"))
	assert.Equal(t, filepath.Join("emsdk", "upstream", "emscripten"), compile.Environment["PATH"])
	assert.Equal(t, "emsdk", compile.Environment["EMSDK"])

	lib, err := res.Graph.Task(domain.NewInternedString("lib:sokol"))
	require.NoError(t, err)
	assert.Equal(t, "emar", lib.Command[0])
}

func TestPlan_WebEmsdkRootOverride(t *testing.T) {
	files := map[string]bool{
		filepath.Join("/opt/emsdk", ".emscripten"): true,
		filepath.Join("/opt/emsdk", "emsdk"):       true,
	}
	p := plan.NewPlanner(newProbe(t, files, nil, "linux", "amd64"), newLogger(t))

	req := webRequest("clear")
	req.EmsdkRoot = "/opt/emsdk"

	res, err := p.Plan(req)
	require.NoError(t, err)

	compile, err := res.Graph.Task(domain.NewInternedString("compile:clear"))
	require.NoError(t, err)
	assert.Equal(t, "/opt/emsdk", compile.Environment["EMSDK"])
}

func TestPlan_WebLinkCommand(t *testing.T) {
	files := map[string]bool{
		filepath.Join("emsdk", ".emscripten"): true,
		filepath.Join("emsdk", "emsdk"):       true,
	}
	p := plan.NewPlanner(newProbe(t, files, nil, "linux", "amd64"), newLogger(t))

	res, err := p.Plan(webRequest("clear"))
	require.NoError(t, err)

	weblink, err := res.Graph.Task(domain.NewInternedString("weblink:clear"))
	require.NoError(t, err)

	cmd := weblink.Command
	assert.Equal(t, "emcc", cmd[0])
	assert.Contains(t, cmd, "out/libsokol.a")
	assert.Contains(t, cmd, "-Oz")
	assert.NotContains(t, cmd, "-Og")
	assert.Contains(t, cmd, "-sNO_FILESYSTEM=1")
	assert.Contains(t, cmd, "-sMALLOC=emmalloc")
	assert.Contains(t, cmd, "-sASSERTIONS=0")
	assert.Contains(t, cmd, "-sERROR_ON_UNDEFINED_SYMBOLS=0")
	assert.Contains(t, cmd, "--shell-file")
	assert.Contains(t, cmd, "src/web/shell.html")
	assert.Contains(t, cmd, "-sUSE_WEBGL2=1")

	run, err := res.Graph.Task(domain.NewInternedString("run-clear"))
	require.NoError(t, err)
	assert.Equal(t, "emrun", run.Command[0])
}

func TestPlan_WebDebugOptimization(t *testing.T) {
	files := map[string]bool{
		filepath.Join("emsdk", ".emscripten"): true,
		filepath.Join("emsdk", "emsdk"):       true,
	}
	p := plan.NewPlanner(newProbe(t, files, nil, "linux", "amd64"), newLogger(t))

	req := webRequest("clear")
	req.Debug = true

	res, err := p.Plan(req)
	require.NoError(t, err)

	weblink, err := res.Graph.Task(domain.NewInternedString("weblink:clear"))
	require.NoError(t, err)
	assert.Contains(t, weblink.Command, "-Og")
	assert.NotContains(t, weblink.Command, "-Oz")
}
