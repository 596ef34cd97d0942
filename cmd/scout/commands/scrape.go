package commands

import (
	"github.com/riskibarqy/garuda-scout/internal/app"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrapes every configured league and rewrites the player table.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := sessionFrom(cmd.Context())

		svc, err := app.NewScrapeService(s.cfg, s.logger)
		if err != nil {
			return err
		}

		report, err := svc.Run(cmd.Context())
		renderScrapeReport(cmd.OutOrStdout(), report)
		return err
	},
}
