package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quadra/pkg/quadra"
)

const modulePath = "github.com/mesh-intelligence/quadra"

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quadra version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "quadra v%s\nmodule: %s\n", quadra.Version, modulePath)
			return nil
		},
	}
}
