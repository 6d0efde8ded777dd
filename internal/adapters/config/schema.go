package config

// Forgefile represents the structure of the sokforge.yaml configuration file.
type Forgefile struct {
	Version string     `yaml:"version"`
	Target  TargetDTO  `yaml:"target"`
	Backend string     `yaml:"backend"`
	Debug   bool       `yaml:"debug"`
	Toggles TogglesDTO `yaml:"toggles"`
	Samples []string   `yaml:"samples"`
	Emsdk   string     `yaml:"emsdk"`
}

// TargetDTO is the raw target triple in the configuration. Empty fields
// default to the host.
type TargetDTO struct {
	OS   string `yaml:"os"`
	Arch string `yaml:"arch"`
	Env  string `yaml:"env"`
}

// TogglesDTO is the feature toggle block. X11 is a pointer so an absent key
// keeps its default of true.
type TogglesDTO struct {
	ForceGL  bool  `yaml:"force_gl"`
	ForceEGL bool  `yaml:"force_egl"`
	X11      *bool `yaml:"x11"`
	Wayland  bool  `yaml:"wayland"`
}
