// Package domain contains the core domain models and business logic for the build graph.
package domain

// Platform is the normalized classification of a raw target triple.
// It is derived once per build invocation and is immutable afterwards.
type Platform string

const (
	// PlatformAppleDesktop is macOS.
	PlatformAppleDesktop Platform = "apple-desktop"
	// PlatformAppleMobile is iOS.
	PlatformAppleMobile Platform = "apple-mobile"
	// PlatformWindows is desktop Windows.
	PlatformWindows Platform = "windows"
	// PlatformLinux is desktop Linux.
	PlatformLinux Platform = "linux"
	// PlatformAndroid is Android.
	PlatformAndroid Platform = "android"
	// PlatformWeb is the Emscripten/browser target.
	PlatformWeb Platform = "web"
	// PlatformOther is the catch-all bucket for unrecognized triples.
	PlatformOther Platform = "other"
)

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// Triple is a raw (operating system, architecture, environment) target descriptor
// before classification.
type Triple struct {
	OS   string
	Arch string
	Env  string
}

// ResolveTriple classifies a raw target triple into a Platform.
// It is total: anything unrecognized lands in PlatformOther, never an error.
func ResolveTriple(t Triple) Platform {
	switch t.OS {
	case "macos", "darwin":
		return PlatformAppleDesktop
	case "ios":
		return PlatformAppleMobile
	case "windows":
		return PlatformWindows
	case "linux":
		if t.Env == "android" {
			return PlatformAndroid
		}
		return PlatformLinux
	case "android":
		return PlatformAndroid
	case "emscripten":
		return PlatformWeb
	case "freestanding", "wasi", "js":
		if t.Arch == "wasm32" || t.Arch == "wasm64" {
			return PlatformWeb
		}
		return PlatformOther
	default:
		return PlatformOther
	}
}

// IsApple reports whether the platform is an Apple OS (desktop or mobile).
func (p Platform) IsApple() bool {
	return p == PlatformAppleDesktop || p == PlatformAppleMobile
}

// IsDesktop reports whether the platform is a desktop OS.
func (p Platform) IsDesktop() bool {
	switch p {
	case PlatformAppleDesktop, PlatformWindows, PlatformLinux:
		return true
	default:
		return false
	}
}

// IsMobile reports whether the platform is a mobile OS.
func (p Platform) IsMobile() bool {
	return p == PlatformAppleMobile || p == PlatformAndroid
}

// IsWeb reports whether the platform is the browser target.
func (p Platform) IsWeb() bool {
	return p == PlatformWeb
}
