package domain

// ActionKind classifies what a build node does when it runs.
type ActionKind string

const (
	// ActionCompile compiles one or more translation units.
	ActionCompile ActionKind = "compile"
	// ActionLink links or archives previously produced artifacts.
	ActionLink ActionKind = "link"
	// ActionRun executes an external program (a built sample or a launcher).
	ActionRun ActionKind = "run"
	// ActionInstall installs or activates an external SDK.
	ActionInstall ActionKind = "install"
)

// Task is one schedulable build node in the dependency graph.
// It uses InternedString for fields that are frequently repeated to save memory.
//
// A task's command runs only after all of its dependencies have completed
// successfully. Outputs are owned by exactly one task and are read-only for
// every downstream consumer.
type Task struct {
	Name         InternedString
	Kind         ActionKind
	Command      []string
	Environment  map[string]string
	WorkingDir   InternedString
	Inputs       []InternedString
	Outputs      []InternedString
	Dependencies []InternedString

	// Cacheable marks tasks whose outputs may be reused when the input hash
	// is unchanged. External-process actions (install, run) are never cached.
	Cacheable bool
}
