// Package commands implements the CLI commands for the sokforge build tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.hollert.ch/sokforge/internal/app"
	"go.hollert.ch/sokforge/internal/build"
)

// CLI represents the command line interface for sokforge.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sokforge",
		Short:         "A build orchestrator for the sokol sample suite",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (default sokforge.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "Graphics backend override (d3d11, metal, glcore, gles3, wgpu)")
	rootCmd.PersistentFlags().Bool("debug", false, "Build without optimization")
	rootCmd.PersistentFlags().Bool("gl", false, "Force the desktop OpenGL backend")
	rootCmd.PersistentFlags().Bool("egl", false, "Force EGL instead of GLX on Linux")
	rootCmd.PersistentFlags().Bool("x11", true, "Enable the X11 windowing system on Linux")
	rootCmd.PersistentFlags().Bool("wayland", false, "Enable the Wayland windowing system on Linux")
	rootCmd.PersistentFlags().Bool("web", false, "Require the Emscripten web target")
	rootCmd.PersistentFlags().String("emsdk", "", "Path to the Emscripten SDK root")
	rootCmd.PersistentFlags().StringSlice("samples", nil, "Restrict the build to the named samples")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newShadersCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// overrides collects the persistent flag values into an app.Overrides.
// Boolean overrides are nil unless the flag was given explicitly so that
// configuration file values survive unset flags.
func overrides(cmd *cobra.Command) app.Overrides {
	flags := cmd.Flags()

	ov := app.Overrides{}
	ov.Config, _ = flags.GetString("config")
	ov.Backend, _ = flags.GetString("backend")
	ov.Web, _ = flags.GetBool("web")
	ov.Emsdk, _ = flags.GetString("emsdk")
	ov.Samples, _ = flags.GetStringSlice("samples")

	ov.Debug = boolOverride(cmd, "debug")
	ov.ForceGL = boolOverride(cmd, "gl")
	ov.ForceEGL = boolOverride(cmd, "egl")
	ov.X11 = boolOverride(cmd, "x11")
	ov.Wayland = boolOverride(cmd, "wayland")

	return ov
}

func boolOverride(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}
