package commands

import "github.com/spf13/cobra"

func (c *CLI) newPredictorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predictors",
		Short: "List the registered predictors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ListPredictors(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
