package commands

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/riskibarqy/garuda-scout/internal/app"
	"github.com/riskibarqy/garuda-scout/internal/config"
	"github.com/riskibarqy/garuda-scout/internal/platform/logging"
	"github.com/riskibarqy/garuda-scout/internal/usecase"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "scout",
	Short:         "scout scrapes Transfermarkt squads and answers scouting queries over the player table.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if verbose {
			level = logging.LevelDebug
		}
		logger := logging.NewConsole(os.Stderr, level)
		logging.SetDefault(logger)

		cmd.SetContext(withSession(cmd.Context(), &session{cfg: cfg, logger: logger}))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session carries what every subcommand needs. The player table is loaded at
// most once per invocation.
type session struct {
	cfg    config.Config
	logger *logging.Logger

	once  sync.Once
	scout *usecase.ScoutService
	err   error
}

func (s *session) scoutService(ctx context.Context) (*usecase.ScoutService, error) {
	s.once.Do(func() {
		s.scout, s.err = app.NewScoutService(ctx, s.cfg, s.logger)
	})
	return s.scout, s.err
}

type sessionKey struct{}

func withSession(ctx context.Context, s *session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionKey{}, s)
}

func sessionFrom(ctx context.Context) *session {
	return ctx.Value(sessionKey{}).(*session)
}
