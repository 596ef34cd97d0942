package commands

import "github.com/spf13/cobra"

var reportLimit int

func init() {
	reportCmd.Flags().IntVarP(&reportLimit, "limit", "n", 3, "Replacements to list per player.")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <team> [--limit <n>]",
	Short: "Lists the closest replacements from other teams for every player of a team.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := sessionFrom(ctx).scoutService(ctx)
		if err != nil {
			return err
		}

		report, err := svc.ReplacementReport(ctx, args[0], reportLimit)
		if err != nil {
			return err
		}

		renderReplacementReport(cmd.OutOrStdout(), report)
		return nil
	},
}
