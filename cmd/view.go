package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"classmark.dev/pkg/classmark/internal/domain"
	m "classmark.dev/pkg/classmark/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View the marking report of a previous run",
		Long:  "View the marking report written by a previous run from the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Output: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
