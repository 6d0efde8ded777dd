// Package app implements the application layer for sokforge.
package app

import (
	"context"
	"errors"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.hollert.ch/sokforge/internal/core/domain"
	"go.hollert.ch/sokforge/internal/core/ports"
	"go.hollert.ch/sokforge/internal/engine/scheduler"
	"go.hollert.ch/sokforge/internal/plan"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	planner      *plan.Planner
	probe        ports.EnvironmentProbe
	executor     ports.Executor
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sched *scheduler.Scheduler,
	planner *plan.Planner,
	probe ports.EnvironmentProbe,
	executor ports.Executor,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scheduler:    sched,
		planner:      planner,
		probe:        probe,
		executor:     executor,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Overrides are CLI-level overrides applied on top of the configuration file.
type Overrides struct {
	Config   string
	Backend  string
	Web      bool
	Debug    *bool
	ForceGL  *bool
	ForceEGL *bool
	X11      *bool
	Wayland  *bool
	Samples  []string
	Emsdk    string
}

// Build compiles the library and all selected samples for the configured target.
func (a *App) Build(ctx context.Context, ov Overrides) error {
	res, err := a.plan(ov)
	if err != nil {
		return err
	}
	return a.execute(ctx, res.Graph, res.BuildTargets)
}

// RunSample builds and executes one sample's named run action. The exit
// code of the underlying program is carried in the returned error chain.
func (a *App) RunSample(ctx context.Context, sample string, ov Overrides) error {
	res, err := a.plan(ov)
	if err != nil {
		return err
	}

	action := "run-" + sample
	if _, ok := res.RunActions[action]; !ok {
		return zerr.With(domain.ErrTaskNotFound, "task_name", action)
	}
	return a.execute(ctx, res.Graph, []string{action})
}

// CompileShaders fans the shader cross-compiler over the shader catalog.
// The whole step is skipped with a warning when no cross-compiler binary is
// known for the host platform.
func (a *App) CompileShaders(ctx context.Context) error {
	jobs, ok := plan.ShaderJobs(a.probe)
	if !ok {
		a.logger.Warn("shader cross-compiler not available for this host, skipping")
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, job := range jobs {
		g.Go(func() error {
			_, vertex := a.telemetry.Record(ctx, job.Name.String())
			err := a.executor.Execute(ctx, &job, vertex.Stdout(), vertex.Stderr())
			vertex.Complete(err)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return nil
}

func (a *App) plan(ov Overrides) (*plan.Result, error) {
	opts, err := a.configLoader.Load(ov.Config)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if err := applyOverrides(opts, ov); err != nil {
		return nil, err
	}

	platform := domain.ResolveTriple(opts.Target)
	if ov.Web && !platform.IsWeb() {
		return nil, zerr.With(domain.ErrWebTargetRequired, "target_os", opts.Target.OS)
	}

	request := opts.Backend
	if opts.Toggles.ForceGL && request == domain.RequestAuto {
		request = domain.RequestGLCore
	}
	backend, err := domain.ResolveBackend(platform, request)
	if err != nil {
		return nil, err
	}

	flags, err := domain.AssembleFlagSet(platform, backend, opts.Toggles)
	if err != nil {
		return nil, err
	}

	return a.planner.Plan(plan.Request{
		Platform:  platform,
		Backend:   backend,
		Flags:     flags,
		Debug:     opts.Debug,
		Samples:   opts.Samples,
		EmsdkRoot: opts.EmsdkRoot,
	})
}

func (a *App) execute(ctx context.Context, graph *domain.Graph, targets []string) error {
	if err := ensureLayout(); err != nil {
		return err
	}
	if err := a.scheduler.Run(ctx, graph, targets, runtime.NumCPU()); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return nil
}

func ensureLayout() error {
	for _, dir := range []string{"out/obj", "out/bin", "out/web"} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.Wrap(err, "failed to create output directory")
		}
	}
	return nil
}

func applyOverrides(opts *domain.BuildOptions, ov Overrides) error {
	if ov.Backend != "" {
		backend, err := domain.ParseBackendRequest(ov.Backend)
		if err != nil {
			return err
		}
		opts.Backend = backend
	}
	if ov.Debug != nil {
		opts.Debug = *ov.Debug
	}
	if ov.ForceGL != nil {
		opts.Toggles.ForceGL = *ov.ForceGL
	}
	if ov.ForceEGL != nil {
		opts.Toggles.ForceEGL = *ov.ForceEGL
	}
	if ov.X11 != nil {
		opts.Toggles.EnableX11 = *ov.X11
	}
	if ov.Wayland != nil {
		opts.Toggles.EnableWayland = *ov.Wayland
	}
	if len(ov.Samples) > 0 {
		opts.Samples = ov.Samples
	}
	if ov.Emsdk != "" {
		opts.EmsdkRoot = ov.Emsdk
	}
	return nil
}
