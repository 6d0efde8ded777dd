// Package config provides the configuration loader for sokforge.
package config

import (
	"errors"
	"io/fs"
	"os"
	"runtime"

	"go.hollert.ch/sokforge/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "sokforge.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the configuration file at path. An empty path selects the
// loader's filename in the working directory. A missing file is not an
// error; it yields the defaults (host target, auto backend, X11 on).
func (l *Loader) Load(path string) (*domain.BuildOptions, error) {
	if path == "" {
		path = l.Filename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultOptions(), nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Forgefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	return buildOptions(&file)
}

func defaultOptions() *domain.BuildOptions {
	return &domain.BuildOptions{
		Target:  hostTriple(),
		Backend: domain.RequestAuto,
		Toggles: domain.DefaultToggles(),
	}
}

func buildOptions(file *Forgefile) (*domain.BuildOptions, error) {
	opts := defaultOptions()

	if file.Target.OS != "" {
		opts.Target.OS = file.Target.OS
	}
	if file.Target.Arch != "" {
		opts.Target.Arch = file.Target.Arch
	}
	opts.Target.Env = file.Target.Env

	backend, err := domain.ParseBackendRequest(file.Backend)
	if err != nil {
		return nil, err
	}
	opts.Backend = backend

	opts.Toggles.ForceGL = file.Toggles.ForceGL
	opts.Toggles.ForceEGL = file.Toggles.ForceEGL
	if file.Toggles.X11 != nil {
		opts.Toggles.EnableX11 = *file.Toggles.X11
	}
	opts.Toggles.EnableWayland = file.Toggles.Wayland

	opts.Debug = file.Debug
	opts.Samples = file.Samples
	opts.EmsdkRoot = file.Emsdk

	return opts, nil
}

func hostTriple() domain.Triple {
	t := domain.Triple{Arch: runtime.GOARCH}
	switch runtime.GOOS {
	case "darwin":
		t.OS = "macos"
	default:
		t.OS = runtime.GOOS
	}
	return t
}
