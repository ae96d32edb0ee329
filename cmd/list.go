package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"classmark.dev/pkg/classmark/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [files...]",
		Short: "List methods and show which would be marked",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Estimate(cmd.Context(), domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Config:  sessionConfig(),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
