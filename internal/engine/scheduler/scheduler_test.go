package scheduler_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.hollert.ch/sokforge/internal/adapters/telemetry"
	"go.hollert.ch/sokforge/internal/core/domain"
	"go.hollert.ch/sokforge/internal/core/ports/mocks"
	"go.hollert.ch/sokforge/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// recordingExecutor captures the order of executed tasks.
type recordingExecutor struct {
	mu       sync.Mutex
	executed []string
	fail     map[string]error
}

func (e *recordingExecutor) Execute(_ context.Context, task *domain.Task, _, _ io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.executed = append(e.executed, task.Name.String())
	if err, ok := e.fail[task.Name.String()]; ok {
		return err
	}
	return nil
}

func (e *recordingExecutor) order() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.executed...)
}

func newDiamondGraph(t *testing.T) *domain.Graph {
	t.Helper()
	// lib depends on compile; linkA and linkB depend on lib.
	g := domain.NewGraph()
	tasks := []domain.Task{
		{Name: domain.NewInternedString("compile:sokol_gfx")},
		{
			Name:         domain.NewInternedString("lib:sokol"),
			Dependencies: domain.NewInternedStrings([]string{"compile:sokol_gfx"}),
		},
		{
			Name:         domain.NewInternedString("link:clear"),
			Dependencies: domain.NewInternedStrings([]string{"lib:sokol"}),
		},
		{
			Name:         domain.NewInternedString("link:triangle"),
			Dependencies: domain.NewInternedStrings([]string{"lib:sokol"}),
		},
	}
	for i := range tasks {
		require.NoError(t, g.AddTask(&tasks[i]))
	}
	return g
}

func newScheduler(executor *recordingExecutor) *scheduler.Scheduler {
	// Uncacheable tasks never touch the store or the hasher.
	return scheduler.NewScheduler(executor, nil, nil, telemetry.NewNoOp())
}

func TestScheduler_Run_RespectsDependencyOrder(t *testing.T) {
	executor := &recordingExecutor{}
	s := newScheduler(executor)

	err := s.Run(context.Background(), newDiamondGraph(t), nil, 1)
	require.NoError(t, err)

	order := executor.order()
	require.Len(t, order, 4)
	assert.Equal(t, "compile:sokol_gfx", order[0])
	assert.Equal(t, "lib:sokol", order[1])
	assert.ElementsMatch(t, []string{"link:clear", "link:triangle"}, order[2:])

	for _, name := range order {
		assert.Equal(t, domain.VertexStatusCompleted, s.Status(name))
	}
}

func TestScheduler_Run_ParallelFanOut(t *testing.T) {
	executor := &recordingExecutor{}
	s := newScheduler(executor)

	err := s.Run(context.Background(), newDiamondGraph(t), nil, 4)
	require.NoError(t, err)
	assert.Len(t, executor.order(), 4)
}

func TestScheduler_Run_TargetSubset(t *testing.T) {
	executor := &recordingExecutor{}
	s := newScheduler(executor)

	err := s.Run(context.Background(), newDiamondGraph(t), []string{"link:clear"}, 2)
	require.NoError(t, err)

	order := executor.order()
	assert.ElementsMatch(t, []string{"compile:sokol_gfx", "lib:sokol", "link:clear"}, order)
	assert.NotContains(t, order, "link:triangle")
}

func TestScheduler_Run_UnknownTarget(t *testing.T) {
	executor := &recordingExecutor{}
	s := newScheduler(executor)

	err := s.Run(context.Background(), newDiamondGraph(t), []string{"link:nope"}, 1)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Empty(t, executor.order())
}

func TestScheduler_Run_FailureSkipsDependents(t *testing.T) {
	executor := &recordingExecutor{
		fail: map[string]error{"lib:sokol": zerr.New("archive failed")},
	}
	s := newScheduler(executor)

	err := s.Run(context.Background(), newDiamondGraph(t), nil, 1)
	require.Error(t, err)

	order := executor.order()
	assert.Contains(t, order, "compile:sokol_gfx")
	assert.Contains(t, order, "lib:sokol")
	assert.NotContains(t, order, "link:clear")
	assert.NotContains(t, order, "link:triangle")

	assert.Equal(t, domain.VertexStatusFailed, s.Status("lib:sokol"))
	assert.Equal(t, domain.VertexStatusSkipped, s.Status("link:clear"))
	assert.Equal(t, domain.VertexStatusSkipped, s.Status("link:triangle"))
}

func TestScheduler_Run_FailureKeepsIndependentSubgraph(t *testing.T) {
	g := domain.NewGraph()
	tasks := []domain.Task{
		{Name: domain.NewInternedString("broken")},
		{
			Name:         domain.NewInternedString("dependent"),
			Dependencies: domain.NewInternedStrings([]string{"broken"}),
		},
		{Name: domain.NewInternedString("independent")},
	}
	for i := range tasks {
		require.NoError(t, g.AddTask(&tasks[i]))
	}

	executor := &recordingExecutor{
		fail: map[string]error{"broken": zerr.New("boom")},
	}
	s := newScheduler(executor)

	err := s.Run(context.Background(), g, nil, 1)
	require.Error(t, err)

	assert.Contains(t, executor.order(), "independent")
	assert.Equal(t, domain.VertexStatusCompleted, s.Status("independent"))
	assert.Equal(t, domain.VertexStatusSkipped, s.Status("dependent"))
}

func TestScheduler_Run_CycleRejected(t *testing.T) {
	g := domain.NewGraph()
	a := domain.Task{
		Name:         domain.NewInternedString("a"),
		Dependencies: domain.NewInternedStrings([]string{"b"}),
	}
	b := domain.Task{
		Name:         domain.NewInternedString("b"),
		Dependencies: domain.NewInternedStrings([]string{"a"}),
	}
	require.NoError(t, g.AddTask(&a))
	require.NoError(t, g.AddTask(&b))

	executor := &recordingExecutor{}
	s := newScheduler(executor)

	err := s.Run(context.Background(), g, nil, 1)
	assert.ErrorIs(t, err, domain.ErrCycleDetected)
	assert.Empty(t, executor.order())
}

func TestScheduler_Run_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	store := mocks.NewMockBuildInfoStore(ctrl)
	hasher := mocks.NewMockHasher(ctrl)

	g := domain.NewGraph()
	task := domain.Task{
		Name:      domain.NewInternedString("compile:clear"),
		Cacheable: true,
		Outputs:   domain.NewInternedStrings([]string{"out/obj/clear.o"}),
	}
	require.NoError(t, g.AddTask(&task))

	hasher.EXPECT().ComputeInputHash(gomock.Any(), ".").Return("hash-1", nil)
	store.EXPECT().Get("compile:clear").Return(&domain.BuildInfo{
		TaskName:  "compile:clear",
		InputHash: "hash-1",
		Timestamp: time.Now(),
	}, nil)
	// No Execute expectation: a cache hit must not run the command.

	s := scheduler.NewScheduler(executor, store, hasher, telemetry.NewNoOp())
	err := s.Run(context.Background(), g, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.VertexStatusCached, s.Status("compile:clear"))
}

func TestScheduler_Run_CacheMissExecutesAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	store := mocks.NewMockBuildInfoStore(ctrl)
	hasher := mocks.NewMockHasher(ctrl)

	g := domain.NewGraph()
	task := domain.Task{
		Name:      domain.NewInternedString("compile:clear"),
		Cacheable: true,
		Outputs:   domain.NewInternedStrings([]string{"out/obj/clear.o"}),
	}
	require.NoError(t, g.AddTask(&task))

	hasher.EXPECT().ComputeInputHash(gomock.Any(), ".").Return("hash-2", nil)
	store.EXPECT().Get("compile:clear").Return(nil, nil)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	hasher.EXPECT().ComputeFileHash("out/obj/clear.o").Return(uint64(0xdead), nil)
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(info domain.BuildInfo) error {
		assert.Equal(t, "compile:clear", info.TaskName)
		assert.Equal(t, "hash-2", info.InputHash)
		assert.NotEmpty(t, info.OutputHash)
		return nil
	})

	s := scheduler.NewScheduler(executor, store, hasher, telemetry.NewNoOp())
	err := s.Run(context.Background(), g, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.VertexStatusCompleted, s.Status("compile:clear"))
}

func TestScheduler_Run_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := &recordingExecutor{}
	s := newScheduler(executor)

	err := s.Run(ctx, newDiamondGraph(t), nil, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
