package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/seer/internal/app"
)

func (c *CLI) newPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict [project]",
		Short: "Predict the inputs and outputs of a project",
		Long: "Predict the files and directories a build of the project reads and writes.\n" +
			"The project is a project file or a directory holding exactly one.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			format, _ := cmd.Flags().GetString("format")
			all, _ := cmd.Flags().GetBool("all")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			disabled, _ := cmd.Flags().GetStringSlice("disable")
			hash, _ := cmd.Flags().GetBool("hash")
			progress, _ := cmd.Flags().GetBool("progress")
			inspect, _ := cmd.Flags().GetBool("inspect")

			return c.app.Predict(cmd.Context(), args[0], app.PredictOptions{
				Format:      format,
				All:         all,
				Parallelism: parallelism,
				Disabled:    disabled,
				Hash:        hash,
				Progress:    progress,
				Inspect:     inspect,
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("format", "f", "", "Output format: text or json (default from seer.yaml, else text)")
	cmd.Flags().BoolP("all", "a", false, "Predict every project of the reference graph")
	cmd.Flags().IntP("parallelism", "p", 0, "Number of projects predicted concurrently with --all (default one per CPU)")
	cmd.Flags().StringSliceP("disable", "d", nil, "Predictor to skip, may be repeated")
	cmd.Flags().Bool("hash", false, "Print a fingerprint of the content of the predicted inputs")
	cmd.Flags().Bool("progress", false, "Print a line to stderr as each project is predicted")
	cmd.Flags().BoolP("inspect", "i", false, "Browse the predictions interactively instead of printing them")

	return cmd
}
