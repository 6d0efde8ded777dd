package commands_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.hollert.ch/sokforge/cmd/sokforge/commands"
	"go.hollert.ch/sokforge/internal/adapters/telemetry"
	"go.hollert.ch/sokforge/internal/app"
	"go.hollert.ch/sokforge/internal/core/domain"
	"go.hollert.ch/sokforge/internal/core/ports/mocks"
	"go.hollert.ch/sokforge/internal/engine/scheduler"
	"go.hollert.ch/sokforge/internal/plan"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	cli      *commands.CLI
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
}

func newCLI(t *testing.T) *cliFixture {
	t.Helper()

	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})
	require.NoError(t, os.Chdir(t.TempDir()))

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	probe := mocks.NewMockEnvironmentProbe(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	hasher.EXPECT().ComputeInputHash(gomock.Any(), gomock.Any()).Return("", assert.AnError).AnyTimes()
	probe.EXPECT().FileExists(gomock.Any()).Return(false).AnyTimes()
	probe.EXPECT().HostOS().Return("linux").AnyTimes()
	probe.EXPECT().HostArch().Return("amd64").AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	noop := telemetry.NewNoOp()
	sched := scheduler.NewScheduler(executor, nil, hasher, noop)
	a := app.New(loader, sched, plan.NewPlanner(probe, logger), probe, executor, noop, logger)

	return &cliFixture{
		cli:      commands.New(a),
		loader:   loader,
		executor: executor,
	}
}

func linuxOptions(samples ...string) *domain.BuildOptions {
	return &domain.BuildOptions{
		Target:  domain.Triple{OS: "linux", Arch: "x86_64"},
		Backend: domain.RequestAuto,
		Toggles: domain.DefaultToggles(),
		Samples: samples,
	}
}

func TestBuild_Success(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("").Return(linuxOptions("clear"), nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.cli.SetArgs([]string{"build"})
	err := f.cli.Execute(context.Background())
	assert.NoError(t, err)
}

func TestBuild_ConfigFlag(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("custom.yaml").Return(linuxOptions("clear"), nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.cli.SetArgs([]string{"build", "-c", "custom.yaml"})
	err := f.cli.Execute(context.Background())
	assert.NoError(t, err)
}

func TestBuild_SamplesFlag(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("").Return(linuxOptions(), nil)

	var ran []string
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task *domain.Task, _, _ any) error {
			ran = append(ran, task.Name.String())
			return nil
		}).AnyTimes()

	f.cli.SetArgs([]string{"build", "--samples", "clear"})
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, ran, "link:clear")
	assert.NotContains(t, ran, "link:triangle")
}

func TestBuild_BackendFlagRejected(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("").Return(linuxOptions(), nil)

	f.cli.SetArgs([]string{"build", "--backend", "vulkan"})
	err := f.cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestBuild_DisplayTogglesRejected(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("").Return(linuxOptions(), nil)

	f.cli.SetArgs([]string{"build", "--x11=false"})
	err := f.cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnsupportedDisplayConfig)
}

func TestRun_Sample(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("").Return(linuxOptions(), nil)

	var ran []string
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task *domain.Task, _, _ any) error {
			ran = append(ran, task.Name.String())
			return nil
		}).AnyTimes()

	f.cli.SetArgs([]string{"run", "triangle"})
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, ran, "run-triangle")
}

func TestRun_RequiresExactlyOneSample(t *testing.T) {
	f := newCLI(t)

	f.cli.SetArgs([]string{"run"})
	err := f.cli.Execute(context.Background())
	assert.Error(t, err)
}

func TestShaders_SkipsWithoutCompiler(t *testing.T) {
	f := newCLI(t)

	f.cli.SetArgs([]string{"shaders"})
	err := f.cli.Execute(context.Background())
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	f := newCLI(t)

	f.cli.SetArgs([]string{"version"})
	err := f.cli.Execute(context.Background())
	assert.NoError(t, err)
}

func TestRoot_Help(t *testing.T) {
	f := newCLI(t)

	f.cli.SetArgs([]string{"--help"})
	err := f.cli.Execute(context.Background())
	assert.NoError(t, err)
}
