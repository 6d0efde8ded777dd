package ports

import "go.hollert.ch/sokforge/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash computes a single hash covering the task definition
	// and the content of its input files, relative to rootDir.
	ComputeInputHash(task *domain.Task, rootDir string) (string, error)

	// ComputeFileHash computes the hash of a single file's content.
	ComputeFileHash(path string) (uint64, error)
}
