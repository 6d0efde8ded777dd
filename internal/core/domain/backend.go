package domain

import "go.trai.ch/zerr"

// Backend is a fully resolved graphics backend. Downstream consumers only
// ever see one of these; the "auto" request never leaves ResolveBackend.
type Backend string

const (
	// BackendD3D11 targets Direct3D 11.
	BackendD3D11 Backend = "d3d11"
	// BackendMetal targets Metal.
	BackendMetal Backend = "metal"
	// BackendGLCore targets desktop OpenGL core profile.
	BackendGLCore Backend = "glcore"
	// BackendGLES3 targets OpenGL ES 3.
	BackendGLES3 Backend = "gles3"
	// BackendWGPU targets WebGPU.
	BackendWGPU Backend = "wgpu"
)

// String returns the string representation of the Backend.
func (b Backend) String() string {
	return string(b)
}

// Define returns the preprocessor define selecting this backend in the
// library sources.
func (b Backend) Define() string {
	switch b {
	case BackendD3D11:
		return "-DSOKOL_D3D11"
	case BackendMetal:
		return "-DSOKOL_METAL"
	case BackendGLCore:
		return "-DSOKOL_GLCORE33"
	case BackendGLES3:
		return "-DSOKOL_GLES3"
	case BackendWGPU:
		return "-DSOKOL_WGPU"
	default:
		return ""
	}
}

// BackendRequest is a user's intent for backend selection. RequestAuto asks
// for the platform default; anything else is an explicit override.
// It is a distinct type from Backend so an unresolved request cannot be
// observed past ResolveBackend.
type BackendRequest string

const (
	// RequestAuto selects the platform's default backend.
	RequestAuto BackendRequest = "auto"
	// RequestD3D11 forces Direct3D 11.
	RequestD3D11 BackendRequest = "d3d11"
	// RequestMetal forces Metal.
	RequestMetal BackendRequest = "metal"
	// RequestGLCore forces desktop OpenGL.
	RequestGLCore BackendRequest = "glcore"
	// RequestGLES3 forces OpenGL ES 3.
	RequestGLES3 BackendRequest = "gles3"
	// RequestWGPU forces WebGPU.
	RequestWGPU BackendRequest = "wgpu"
)

// ParseBackendRequest parses a user-supplied backend name.
func ParseBackendRequest(s string) (BackendRequest, error) {
	switch BackendRequest(s) {
	case RequestAuto, RequestD3D11, RequestMetal, RequestGLCore, RequestGLES3, RequestWGPU:
		return BackendRequest(s), nil
	case "":
		return RequestAuto, nil
	default:
		return "", zerr.With(ErrUnknownBackend, "backend", s)
	}
}

// ResolveBackend maps a platform and an optional override to exactly one
// concrete Backend. It is a pure function and must be called at most once
// per build; its result is shared by all downstream consumers.
//
// An explicit override is returned unchanged, with one hard rule: Android
// only supports GLES3, any other request is a configuration error.
func ResolveBackend(p Platform, req BackendRequest) (Backend, error) {
	var b Backend
	switch req {
	case RequestAuto:
		b = defaultBackend(p)
	case RequestD3D11:
		b = BackendD3D11
	case RequestMetal:
		b = BackendMetal
	case RequestGLCore:
		b = BackendGLCore
	case RequestGLES3:
		b = BackendGLES3
	case RequestWGPU:
		b = BackendWGPU
	default:
		return "", zerr.With(ErrUnknownBackend, "backend", string(req))
	}

	if p == PlatformAndroid && b != BackendGLES3 {
		return "", zerr.With(zerr.With(ErrBackendNotSupported, "platform", p.String()), "backend", b.String())
	}
	return b, nil
}

func defaultBackend(p Platform) Backend {
	switch p {
	case PlatformAppleDesktop, PlatformAppleMobile:
		return BackendMetal
	case PlatformWindows:
		return BackendD3D11
	case PlatformWeb, PlatformAndroid:
		return BackendGLES3
	default:
		return BackendGLCore
	}
}
