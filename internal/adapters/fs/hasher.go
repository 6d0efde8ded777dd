// Package fs provides filesystem-backed hashing for build node caching.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.hollert.ch/sokforge/internal/core/domain"
	"go.hollert.ch/sokforge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for tasks and files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeInputHash computes a single hash representing the task definition
// and the content of its input files.
func (h *Hasher) ComputeInputHash(task *domain.Task, rootDir string) (string, error) {
	hasher := xxhash.New()

	h.hashTaskDefinition(task, hasher)

	for _, input := range task.Inputs {
		path := input.String()
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootDir, path)
		}
		fileHash, err := h.ComputeFileHash(path)
		if err != nil {
			return "", err
		}
		_, _ = hasher.WriteString(input.String())
		_ = writeUint64(hasher, fileHash)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashTaskDefinition(task *domain.Task, hasher *xxhash.Digest) {
	_, _ = hasher.WriteString(task.Name.String())
	_, _ = hasher.Write([]byte{0})

	_, _ = hasher.WriteString(string(task.Kind))
	_, _ = hasher.Write([]byte{0})

	for _, arg := range task.Command {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	// Environment in sorted key order for determinism.
	keys := make([]string, 0, len(task.Environment))
	for k := range task.Environment {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(task.Environment[k])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	for _, output := range task.Outputs {
		_, _ = hasher.WriteString(output.String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

func writeUint64(hasher *xxhash.Digest, v uint64) error {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	_, err := hasher.Write(buf[:])
	return err
}
