// Package detector implements host environment probing.
package detector

import (
	"os"
	"os/exec"
	"runtime"

	"go.hollert.ch/sokforge/internal/core/ports"
)

var _ ports.EnvironmentProbe = (*Probe)(nil)

// Probe implements ports.EnvironmentProbe against the real host.
type Probe struct{}

// NewProbe creates a new host Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// FileExists reports whether a regular file exists at path.
func (p *Probe) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// LookPath searches the system PATH for an executable.
func (p *Probe) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// HostOS returns the host operating system.
func (p *Probe) HostOS() string {
	return runtime.GOOS
}

// HostArch returns the host architecture.
func (p *Probe) HostArch() string {
	return runtime.GOARCH
}
