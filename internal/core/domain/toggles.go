package domain

// FeatureToggles are the independent build-time switches orthogonal to
// platform and backend. They are supplied once at the top level and
// threaded unchanged through flag assembly; nothing mutates them.
type FeatureToggles struct {
	// ForceGL requests the GL backend family regardless of platform default.
	ForceGL bool
	// ForceEGL uses EGL instead of the platform's native GL context mechanism.
	ForceEGL bool
	// EnableX11 builds X11 windowing support on Linux. Defaults to on.
	EnableX11 bool
	// EnableWayland builds Wayland windowing support on Linux.
	EnableWayland bool
}

// DefaultToggles returns the toggle defaults: X11 on, everything else off.
func DefaultToggles() FeatureToggles {
	return FeatureToggles{EnableX11: true}
}
