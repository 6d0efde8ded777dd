package plan

import (
	"path/filepath"

	"go.hollert.ch/sokforge/internal/core/domain"
	"go.hollert.ch/sokforge/internal/core/ports"
)

// shdcRelDir is the fixed location of the shader cross-compiler binaries,
// outside this project's own source tree.
const shdcRelDir = "../sokol-tools-bin/bin"

// shaderLangs is the fixed list of target shading-language variants.
const shaderLangs = "glsl410:glsl300es:hlsl4:metal_macos:wgsl"

// ShaderJobs returns one task per shader source in the catalog, each
// invoking the external cross-compiler. The group is independent of the
// rest of the build and is triggered manually.
//
// The second return value is false when no cross-compiler binary is known
// for the host platform; the caller warns and skips instead of failing.
func ShaderJobs(probe ports.EnvironmentProbe) ([]domain.Task, bool) {
	shdc, ok := shdcPath(probe)
	if !ok || !probe.FileExists(shdc) {
		return nil, false
	}

	tasks := make([]domain.Task, 0, len(shaderCatalog))
	for _, shader := range shaderCatalog {
		src := filepath.Join(shaderSrcDir, shader)
		out := src + ".h"
		tasks = append(tasks, domain.Task{
			Name: domain.NewInternedString("shader:" + shader),
			Kind: domain.ActionCompile,
			Command: []string{
				shdc,
				"-i", src,
				"-o", out,
				"-l", shaderLangs,
				"-f", "sokol",
			},
			Inputs:  intern([]string{src}),
			Outputs: intern([]string{out}),
		})
	}
	return tasks, true
}

// shdcPath maps the host platform to its cross-compiler binary.
func shdcPath(probe ports.EnvironmentProbe) (string, bool) {
	switch probe.HostOS() {
	case "windows":
		return filepath.Join(shdcRelDir, "win32", "sokol-shdc.exe"), true
	case "darwin":
		if probe.HostArch() == "arm64" {
			return filepath.Join(shdcRelDir, "osx_arm64", "sokol-shdc"), true
		}
		return filepath.Join(shdcRelDir, "osx", "sokol-shdc"), true
	case "linux":
		return filepath.Join(shdcRelDir, "linux", "sokol-shdc"), true
	default:
		return "", false
	}
}
