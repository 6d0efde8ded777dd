package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newShadersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shaders",
		Short: "Cross-compile the shader sources to C headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.CompileShaders(cmd.Context())
		},
	}
}
