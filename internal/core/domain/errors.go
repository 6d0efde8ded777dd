package domain

import "go.trai.ch/zerr"

// ExitCode extracts the exit code of a failed external process from an
// error chain. Run actions propagate the executed program's exit code to
// the caller through zerr metadata.
func ExitCode(err error) (int, bool) {
	for _, e := range flatten(err) {
		zErr, ok := e.(*zerr.Error)
		if !ok {
			continue
		}
		if code, ok := zErr.Metadata()["exit_code"].(int); ok {
			return code, true
		}
	}
	return 0, false
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	out := []error{err}
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		out = append(out, flatten(u.Unwrap())...)
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			out = append(out, flatten(e)...)
		}
	}
	return out
}

var (
	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not found in the graph.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrUnknownBackend is returned when a backend name cannot be parsed.
	ErrUnknownBackend = zerr.New("unknown backend")

	// ErrBackendNotSupported is returned when an explicit backend override is
	// invalid for the target platform. This is a configuration error: no
	// build nodes are constructed.
	ErrBackendNotSupported = zerr.New("backend not supported on platform")

	// ErrUnsupportedDisplayConfig is returned on Linux when both X11 and
	// Wayland are disabled. The combination is rejected explicitly instead
	// of silently producing a link set without a windowing system.
	ErrUnsupportedDisplayConfig = zerr.New("x11 and wayland both disabled")

	// ErrWebTargetRequired is returned when a web-only operation is
	// requested for a non-web target classification.
	ErrWebTargetRequired = zerr.New("operation requires the web target")

	// ErrBuildExecutionFailed is returned when one or more build nodes failed.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
