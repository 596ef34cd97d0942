package commands

import (
	"github.com/riskibarqy/garuda-scout/internal/usecase"
	"github.com/spf13/cobra"
)

var recommendLimit int

func init() {
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", usecase.DefaultResultLimit, "Number of candidates to list.")
	rootCmd.AddCommand(recommendCmd)
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <team> <position> [--limit <n>]",
	Short: "Lists affordable players from other teams for a position, best value for age first.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := sessionFrom(ctx).scoutService(ctx)
		if err != nil {
			return err
		}

		rec, err := svc.Recommend(ctx, args[0], args[1], recommendLimit)
		if err != nil {
			return err
		}

		renderRecommendation(cmd.OutOrStdout(), rec)
		return nil
	},
}
