package scheduler

import "go.hollert.ch/sokforge/internal/core/domain"

// Status exposes the internal task status for tests.
func (s *Scheduler) Status(name string) domain.VertexStatus {
	return s.getStatus(domain.NewInternedString(name))
}
