package domain

import "go.trai.ch/zerr"

// FlagSet is the assembled compiler input for one platform/backend/toggle
// combination: the ordered preprocessor flags and the ordered system
// libraries and frameworks to link.
//
// Ordering within each list is significant for reproducible build logs, so
// the assembler emits fixed positions per platform instead of appending in
// toggle evaluation order. A toggle that contributes nothing at a fixed
// position leaves an empty string behind.
type FlagSet struct {
	CFlags     []string
	Libs       []string
	Frameworks []string
}

// AssembleFlagSet produces the FlagSet for a platform, a resolved backend,
// and the feature toggles. It is a deterministic function of its inputs.
func AssembleFlagSet(p Platform, b Backend, t FeatureToggles) (FlagSet, error) {
	switch p {
	case PlatformAppleDesktop, PlatformAppleMobile:
		return appleFlagSet(p, b), nil
	case PlatformAndroid:
		return androidFlagSet(b)
	case PlatformLinux:
		return linuxFlagSet(b, t)
	case PlatformWindows:
		return windowsFlagSet(b), nil
	default:
		// Web and the catch-all bucket compile with the backend define only.
		// Web linking is delegated to the Emscripten bridge.
		return FlagSet{CFlags: []string{b.Define()}}, nil
	}
}

func appleFlagSet(p Platform, b Backend) FlagSet {
	fs := FlagSet{
		CFlags:     []string{"-ObjC", b.Define()},
		Frameworks: []string{"Foundation", "AudioToolbox"},
	}
	if b == BackendMetal {
		fs.Frameworks = append(fs.Frameworks, "Metal", "MetalKit")
	}
	if p == PlatformAppleMobile {
		fs.Frameworks = append(fs.Frameworks, "UIKit", "AVFoundation")
		if b != BackendMetal {
			fs.Frameworks = append(fs.Frameworks, "OpenGLES", "GLKit")
		}
	} else {
		fs.Frameworks = append(fs.Frameworks, "Cocoa", "QuartzCore")
		if b == BackendGLCore {
			fs.Frameworks = append(fs.Frameworks, "OpenGL")
		}
	}
	return fs
}

func androidFlagSet(b Backend) (FlagSet, error) {
	if b != BackendGLES3 {
		return FlagSet{}, zerr.With(zerr.With(ErrBackendNotSupported, "platform", PlatformAndroid.String()), "backend", b.String())
	}
	return FlagSet{
		CFlags: []string{b.Define()},
		Libs:   []string{"GLESv3", "EGL", "android", "log"},
	}, nil
}

func linuxFlagSet(b Backend, t FeatureToggles) (FlagSet, error) {
	if !t.EnableX11 && !t.EnableWayland {
		return FlagSet{}, ErrUnsupportedDisplayConfig
	}

	eglFlag := ""
	if t.ForceEGL {
		eglFlag = "-DSOKOL_FORCE_EGL"
	}
	fs := FlagSet{
		CFlags: []string{b.Define(), eglFlag},
		Libs:   []string{"asound", "GL"},
	}
	if !t.EnableX11 {
		fs.CFlags = append(fs.CFlags, "-DSOKOL_DISABLE_X11")
	}
	if !t.EnableWayland {
		fs.CFlags = append(fs.CFlags, "-DSOKOL_DISABLE_WAYLAND")
	}
	if t.EnableX11 {
		fs.Libs = append(fs.Libs, "X11", "Xi", "Xcursor")
	}
	if t.EnableWayland {
		fs.Libs = append(fs.Libs, "wayland-client", "wayland-cursor", "wayland-egl", "xkbcommon")
	}
	// Wayland requires EGL regardless of the X11 toggle.
	if t.ForceEGL || t.EnableWayland {
		fs.Libs = append(fs.Libs, "EGL")
	}
	return fs, nil
}

func windowsFlagSet(b Backend) FlagSet {
	fs := FlagSet{
		CFlags: []string{b.Define()},
		Libs:   []string{"kernel32", "user32", "gdi32", "ole32"},
	}
	if b == BackendD3D11 {
		fs.Libs = append(fs.Libs, "d3d11", "dxgi")
	}
	return fs
}
