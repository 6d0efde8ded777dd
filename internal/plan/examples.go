package plan

import (
	"path/filepath"

	"go.hollert.ch/sokforge/internal/core/domain"
)

// addSampleTasks declares the build nodes for one sample: its compiled
// unit, its final artifact (native executable or web bundle), and the named
// run action "run-<sample>".
func addSampleTasks(g *domain.Graph, req Request, sdk *sdkState, libName, sample string) (string, string, error) {
	cc := compilerFor(req.Platform)

	src := filepath.Join(sampleSrcDir, sample+".c")
	obj := filepath.Join(objDir, sample+".o")

	compileName := "compile:" + sample
	compile := &domain.Task{
		Name:      domain.NewInternedString(compileName),
		Kind:      domain.ActionCompile,
		Command:   compileCommand(cc, req, sdk, src, obj),
		Inputs:    intern([]string{src}),
		Outputs:   intern([]string{obj}),
		Cacheable: true,
	}
	if sdk != nil {
		compile.Environment = sdk.taskEnv()
		compile.Dependencies = intern(sdk.bootstrapDeps())
	}
	if err := g.AddTask(compile); err != nil {
		return "", "", err
	}

	if req.Platform.IsWeb() {
		return addWebSampleTasks(g, req, sdk, libName, sample, compileName, obj)
	}
	return addNativeSampleTasks(g, req, libName, sample, compileName, obj)
}

func addNativeSampleTasks(g *domain.Graph, req Request, libName, sample, compileName, obj string) (string, string, error) {
	exe := filepath.Join(binDir, sample)
	linkName := "link:" + sample

	cmd := []string{compilerFor(req.Platform), "-o", exe, obj, libArtifact}
	for _, lib := range req.Flags.Libs {
		cmd = append(cmd, "-l"+lib)
	}
	for _, fw := range req.Flags.Frameworks {
		cmd = append(cmd, "-framework", fw)
	}

	link := &domain.Task{
		Name:         domain.NewInternedString(linkName),
		Kind:         domain.ActionLink,
		Command:      cmd,
		Inputs:       intern([]string{obj, libArtifact}),
		Outputs:      intern([]string{exe}),
		Dependencies: intern([]string{compileName, libName}),
		Cacheable:    true,
	}
	if err := g.AddTask(link); err != nil {
		return "", "", err
	}

	runName := "run-" + sample
	run := &domain.Task{
		Name:         domain.NewInternedString(runName),
		Kind:         domain.ActionRun,
		Command:      []string{exe},
		Inputs:       intern([]string{exe}),
		Dependencies: intern([]string{linkName}),
	}
	if err := g.AddTask(run); err != nil {
		return "", "", err
	}

	return linkName, runName, nil
}
