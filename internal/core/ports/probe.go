package ports

// EnvironmentProbe is a small capability object for inspecting the host
// machine. It is injected into graph construction so the web toolchain
// bridge and the shader step stay testable against a fake filesystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type EnvironmentProbe interface {
	// FileExists reports whether a regular file exists at path.
	FileExists(path string) bool

	// LookPath searches the system PATH for an executable.
	LookPath(file string) (string, error)

	// HostOS returns the host operating system (runtime.GOOS).
	HostOS() string

	// HostArch returns the host architecture (runtime.GOARCH).
	HostArch() string
}
