package domain

// VertexStatus represents the lifecycle state of a build node in the graph.
type VertexStatus string

const (
	// VertexStatusPending indicates the node is waiting for dependencies or scheduling.
	VertexStatusPending VertexStatus = "pending"
	// VertexStatusRunning indicates the node is currently executing.
	VertexStatusRunning VertexStatus = "running"
	// VertexStatusCompleted indicates the node executed successfully.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates the node execution failed.
	VertexStatusFailed VertexStatus = "failed"
	// VertexStatusCached indicates the node's work was skipped because a valid cache was found.
	VertexStatusCached VertexStatus = "cached"
	// VertexStatusSkipped indicates the node was not executed because a
	// transitive dependency failed. Skipped nodes are never retried.
	VertexStatusSkipped VertexStatus = "skipped"
)

// IsTerminal checks if a status is a terminal state (Completed, Failed, Cached, Skipped).
func (s VertexStatus) IsTerminal() bool {
	switch s {
	case VertexStatusCompleted, VertexStatusFailed, VertexStatusCached, VertexStatusSkipped:
		return true
	default:
		return false
	}
}
