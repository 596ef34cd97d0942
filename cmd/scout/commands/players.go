package commands

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/garuda-scout/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	playersFilter  usecase.PlayerFilter
	playersOptions bool
)

func init() {
	playersCmd.Flags().StringVarP(&playersFilter.League, "league", "l", "", "Only players of this league.")
	playersCmd.Flags().StringVarP(&playersFilter.Team, "team", "t", "", "Only players of this team.")
	playersCmd.Flags().StringVarP(&playersFilter.Position, "position", "p", "", "Only players at this position.")
	playersCmd.Flags().BoolVar(&playersOptions, "options", false, "Print the available leagues, teams and positions instead.")
	rootCmd.AddCommand(playersCmd)
}

var playersCmd = &cobra.Command{
	Use:   "players [--league <league>] [--team <team>] [--position <position>]",
	Short: "Lists players of the table, optionally filtered.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		svc, err := sessionFrom(ctx).scoutService(ctx)
		if err != nil {
			return err
		}

		if playersOptions {
			options, err := svc.FilterOptions(ctx, playersFilter.League, playersFilter.Team)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Leagues:   %s\n", strings.Join(options.Leagues, ", "))
			fmt.Fprintf(w, "Teams:     %s\n", strings.Join(options.Teams, ", "))
			fmt.Fprintf(w, "Positions: %s\n", strings.Join(options.Positions, ", "))
			return nil
		}

		records, err := svc.ListPlayers(ctx, playersFilter)
		if err != nil {
			return err
		}

		renderPlayers(cmd.OutOrStdout(), records)
		return nil
	},
}
