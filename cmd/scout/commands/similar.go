package commands

import (
	"errors"

	"github.com/riskibarqy/garuda-scout/internal/domain/scouting"
	"github.com/riskibarqy/garuda-scout/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	similarTeam  string
	similarLimit int
)

func init() {
	similarCmd.Flags().StringVarP(&similarTeam, "team", "t", "", "Team of the player, when the name is ambiguous.")
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "n", usecase.DefaultResultLimit, "Number of players to list.")
	rootCmd.AddCommand(similarCmd)
}

var similarCmd = &cobra.Command{
	Use:   "similar <player name> [--team <team>] [--limit <n>]",
	Short: "Lists the players most similar to a player at the same position.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := sessionFrom(ctx).scoutService(ctx)
		if err != nil {
			return err
		}

		result, err := svc.FindSimilar(ctx, args[0], similarTeam, similarLimit)
		if errors.Is(err, scouting.ErrPlayerNotFound) {
			suggestions, suggestErr := svc.SuggestNames(ctx, args[0], usecase.DefaultResultLimit)
			if suggestErr != nil {
				return suggestErr
			}
			renderSuggestions(cmd.OutOrStdout(), args[0], suggestions)
			return err
		}
		if err != nil {
			return err
		}

		renderSimilar(cmd.OutOrStdout(), result)
		return nil
	},
}
