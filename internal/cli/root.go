package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/playerlist/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "playerlist",
		Short: "Manage the local player verdict list",
		Long: `playerlist manages the persistent list of players you have marked as
bots, cheaters, suspicious or trusted, along with any notes and the names
each player has been seen using.

If the playerlist file exists but cannot be read or parsed, every command
stops without touching it. Fix or remove the file to continue.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

			var err error
			app, err = factory.New(cfg.FactoryConfig(logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerlistPath, "playerlist", cfg.PlayerlistPath, "Playerlist file path (env: PLAYERLIST_PATH)")
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigDir, "config-dir", cfg.ConfigDir, "Config directory (env: PLAYERLIST_CONFIG_DIR)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: file, memory, redis (env: PLAYERLIST_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for --storage redis (env: PLAYERLIST_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newVerdictCmd())
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newNoteCmd())
	rootCmd.AddCommand(newPruneCmd())
	rootCmd.AddCommand(newPathCmd())

	return rootCmd
}

// Execute runs the root command. A playerlist that failed to load ends the
// process here, before anything can overwrite it.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
