package plan

import (
	"path/filepath"

	"go.hollert.ch/sokforge/internal/core/domain"
)

const libTaskName = "lib:sokol"

// addLibraryTasks adds one compile task per library translation unit and a
// single archive task producing the static library artifact. Downstream
// consumers depend only on the archive task.
//
// On the web target every compile task depends on the SDK bootstrap (when
// one is needed) and adds the SDK sysroot headers to its search path.
func addLibraryTasks(g *domain.Graph, req Request, sdk *sdkState) (string, error) {
	cc := compilerFor(req.Platform)
	ar := archiverFor(req.Platform)

	objects := make([]string, 0, len(libraryUnits))
	compileNames := make([]string, 0, len(libraryUnits))

	for _, unit := range libraryUnits {
		src := filepath.Join(libSrcDir, unit+".c")
		obj := filepath.Join(objDir, unit+".o")
		objects = append(objects, obj)

		name := "compile:" + unit
		compileNames = append(compileNames, name)

		task := &domain.Task{
			Name:      domain.NewInternedString(name),
			Kind:      domain.ActionCompile,
			Command:   compileCommand(cc, req, sdk, src, obj),
			Inputs:    intern([]string{src}),
			Outputs:   intern([]string{obj}),
			Cacheable: true,
		}
		if sdk != nil {
			task.Environment = sdk.taskEnv()
			task.Dependencies = intern(sdk.bootstrapDeps())
		}
		if err := g.AddTask(task); err != nil {
			return "", err
		}
	}

	archive := &domain.Task{
		Name:         domain.NewInternedString(libTaskName),
		Kind:         domain.ActionLink,
		Command:      append([]string{ar, "rcs", libArtifact}, objects...),
		Inputs:       intern(objects),
		Outputs:      intern([]string{libArtifact}),
		Dependencies: intern(compileNames),
		Cacheable:    true,
	}
	if sdk != nil {
		archive.Environment = sdk.taskEnv()
	}
	if err := g.AddTask(archive); err != nil {
		return "", err
	}
	return libTaskName, nil
}

func compileCommand(cc string, req Request, sdk *sdkState, src, obj string) []string {
	cmd := []string{cc}
	cmd = append(cmd, nonEmpty(req.Flags.CFlags)...)
	if sdk != nil {
		cmd = append(cmd, "-I", sdk.sysrootInclude)
	}
	cmd = append(cmd, "-c", src, "-o", obj)
	return cmd
}

func compilerFor(p domain.Platform) string {
	if p.IsWeb() {
		return "emcc"
	}
	return "cc"
}

func archiverFor(p domain.Platform) string {
	if p.IsWeb() {
		return "emar"
	}
	return "ar"
}
