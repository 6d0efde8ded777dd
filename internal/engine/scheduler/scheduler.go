// Package scheduler implements the parallel build node scheduler.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.hollert.ch/sokforge/internal/core/domain"
	"go.hollert.ch/sokforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scheduler executes the build graph with bounded parallelism. A node runs
// only after all of its dependencies completed successfully; when a node
// fails, all of its transitive dependents are marked skipped and are never
// executed or retried.
type Scheduler struct {
	executor  ports.Executor
	store     ports.BuildInfoStore
	hasher    ports.Hasher
	telemetry ports.Telemetry

	mu         sync.RWMutex
	taskStatus map[domain.InternedString]domain.VertexStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	executor ports.Executor,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
) *Scheduler {
	return &Scheduler{
		executor:   executor,
		store:      store,
		hasher:     hasher,
		telemetry:  telemetry,
		taskStatus: make(map[domain.InternedString]domain.VertexStatus),
	}
}

func (s *Scheduler) updateStatus(name domain.InternedString, status domain.VertexStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[name] = status
}

func (s *Scheduler) getStatus(name domain.InternedString) domain.VertexStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskStatus[name]
}

// Run executes the subgraph needed for the given targets with the specified
// parallelism. Empty targets means the whole graph.
func (s *Scheduler) Run(ctx context.Context, graph *domain.Graph, targets []string, parallelism int) error {
	if err := graph.Validate(); err != nil {
		return err
	}
	if parallelism < 1 {
		parallelism = 1
	}

	state, err := s.newRunState(ctx, graph, targets, parallelism)
	if err != nil {
		return err
	}

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			return errors.Join(state.errs, state.ctx.Err())
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}

	return state.errs
}

type result struct {
	task domain.InternedString
	err  error
}

type runState struct {
	graph       *domain.Graph
	needed      map[domain.InternedString]bool
	inDegree    map[domain.InternedString]int
	tasks       map[domain.InternedString]domain.Task
	ready       []domain.InternedString
	active      int
	resultsCh   chan result
	errs        error
	ctx         context.Context
	parallelism int
	s           *Scheduler
}

func (s *Scheduler) newRunState(ctx context.Context, graph *domain.Graph, targets []string, parallelism int) (*runState, error) {
	var needed map[domain.InternedString]bool
	if len(targets) > 0 {
		names := make([]domain.InternedString, len(targets))
		for i, t := range targets {
			names[i] = domain.NewInternedString(t)
		}
		var err error
		needed, err = graph.Reach(names)
		if err != nil {
			return nil, err
		}
	} else {
		needed = make(map[domain.InternedString]bool)
		for task := range graph.Walk() {
			needed[task.Name] = true
		}
	}

	inDegree := make(map[domain.InternedString]int, len(needed))
	tasks := make(map[domain.InternedString]domain.Task, len(needed))

	for task := range graph.Walk() {
		if !needed[task.Name] {
			continue
		}
		tasks[task.Name] = task
		inDegree[task.Name] = len(task.Dependencies)
		s.updateStatus(task.Name, domain.VertexStatusPending)
	}

	var ready []domain.InternedString
	for name, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}

	return &runState{
		graph:       graph,
		needed:      needed,
		inDegree:    inDegree,
		tasks:       tasks,
		ready:       ready,
		resultsCh:   make(chan result, parallelism),
		ctx:         ctx,
		parallelism: parallelism,
		s:           s,
	}, nil
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		taskName := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(taskName, domain.VertexStatusRunning)

		go func(t domain.Task) {
			state.resultsCh <- result{task: t.Name, err: state.executeTask(state.ctx, &t)}
		}(state.tasks[taskName])
	}
}

func (state *runState) executeTask(ctx context.Context, task *domain.Task) error {
	ctx, vertex := state.s.telemetry.Record(ctx, task.Name.String())

	if task.Cacheable {
		inputHash, err := state.s.hasher.ComputeInputHash(task, ".")
		if err == nil && state.checkCacheHit(task, inputHash) {
			vertex.Cached()
			vertex.Complete(nil)
			return nil
		}

		execErr := state.s.executor.Execute(ctx, task, vertex.Stdout(), vertex.Stderr())
		if execErr == nil && err == nil {
			execErr = state.updateCache(task, inputHash)
		}
		vertex.Complete(execErr)
		return execErr
	}

	err := state.s.executor.Execute(ctx, task, vertex.Stdout(), vertex.Stderr())
	vertex.Complete(err)
	return err
}

func (state *runState) checkCacheHit(task *domain.Task, inputHash string) bool {
	buildInfo, err := state.s.store.Get(task.Name.String())
	if err == nil && buildInfo != nil && buildInfo.InputHash == inputHash {
		state.s.updateStatus(task.Name, domain.VertexStatusCached)
		return true
	}
	return false
}

func (state *runState) updateCache(task *domain.Task, inputHash string) error {
	outputHash, err := state.computeOutputHash(task)
	if err != nil {
		return err
	}

	info := domain.BuildInfo{
		TaskName:   task.Name.String(),
		InputHash:  inputHash,
		OutputHash: outputHash,
		Timestamp:  time.Now(),
	}

	if err := state.s.store.Put(info); err != nil {
		return zerr.Wrap(err, "failed to store build info")
	}
	return nil
}

func (state *runState) computeOutputHash(task *domain.Task) (string, error) {
	var outputHash string
	for _, output := range task.Outputs {
		h, err := state.s.hasher.ComputeFileHash(output.String())
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to hash output"), "path", output.String())
		}
		outputHash += hex16(h)
	}
	return outputHash, nil
}

func hex16(v uint64) string {
	const digits = "0123456789abcdef"
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf)
}

func (state *runState) handleResult(res result) {
	state.active--
	if res.err != nil {
		wrappedErr := zerr.With(zerr.Wrap(res.err, "task execution failed"), "task", res.task.String())
		state.errs = errors.Join(state.errs, wrappedErr)
		state.s.updateStatus(res.task, domain.VertexStatusFailed)
		state.skipDependents(res.task)
		return
	}

	// Only update to Completed if it wasn't a cache hit.
	if state.s.getStatus(res.task) != domain.VertexStatusCached {
		state.s.updateStatus(res.task, domain.VertexStatusCompleted)
	}
	for _, dep := range state.graph.Dependents(res.task) {
		if !state.needed[dep] {
			continue
		}
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 && state.s.getStatus(dep) != domain.VertexStatusSkipped {
			state.ready = append(state.ready, dep)
		}
	}
}

// skipDependents marks every transitive dependent of a failed node as
// skipped. Skipped nodes never enter the ready queue; independent
// subgraphs keep executing.
func (state *runState) skipDependents(name domain.InternedString) {
	for _, dep := range state.graph.Dependents(name) {
		if !state.needed[dep] {
			continue
		}
		if state.s.getStatus(dep) == domain.VertexStatusSkipped {
			continue
		}
		state.s.updateStatus(dep, domain.VertexStatusSkipped)
		state.skipDependents(dep)
	}
}
