package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saltyorg/aaquestions/internal/config"
	"github.com/saltyorg/aaquestions/internal/database"
	"github.com/saltyorg/aaquestions/internal/logging"
	"github.com/saltyorg/aaquestions/internal/web"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	dbPath    string
	logFile   string
	verbosity int

	bind string
	port int
)

// app is the state shared by every subcommand once the root pre-run has resolved it.
type app struct {
	cfg       *config.Config
	loader    *config.Loader
	connector *database.Connector
}

func main() {
	a := &app{}
	rootCmd := newRootCmd(a)

	err := rootCmd.Execute()
	if closeErr := a.close(); closeErr != nil {
		log.Debug().Err(closeErr).Msg("Failed to close database")
	}
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "aaquestions",
		Short:        "aaquestions - Q&A store browser",
		Long:         `aaquestions reads users, questions, replies, likes and follows from a questions SQLite store.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", config.DefaultDBPath, "SQLite store path (or set AAQ_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this rotating file (or set AAQ_LOG_FILE)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(
		newUserCmd(a),
		newQuestionCmd(a),
		newTopCmd(a),
		newServeCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "aaquestions %s (commit: %s, built: %s)\n", version, commit, date)
			},
		},
	)

	return rootCmd
}

// setup resolves config (env, then flags), configures logging and prepares
// the connector. The store itself is opened lazily by the first query.
func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.NewEnvSettings()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	cfg, err := config.FromSettings(settings)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("bind") {
		cfg.Bind = bind
	}
	if flags.Changed("port") {
		cfg.Port = port
	}
	cfg.LogLevel = logging.LevelForVerbosity(verbosity, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return err
	}

	loader := config.NewLoader(settings)
	logging.Apply(cfg.LogLevel, loader, cmd.ErrOrStderr(), cfg.LogFile)

	a.cfg = cfg
	a.loader = loader
	a.connector = database.NewConnector(cfg.DBPath)
	return nil
}

// db returns the process-wide store handle
func (a *app) db() (*database.DB, error) {
	db, err := a.connector.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", a.connector.Path(), err)
	}
	return db, nil
}

func (a *app) close() error {
	if a.connector == nil {
		return nil
	}
	return a.connector.Close()
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the store as a read-only JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.db()
			if err != nil {
				return err
			}

			if a.cfg.LogFile == "" {
				logging.Apply(a.cfg.LogLevel, a.loader, cmd.ErrOrStderr(), logging.FilePathForDB(a.cfg.DBPath))
			}

			log.Info().
				Str("version", version).
				Str("database", db.Path()).
				Str("bind", a.cfg.Bind).
				Int("port", a.cfg.Port).
				Msg("Starting aaquestions")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := web.NewServer(db, a.cfg.Bind, a.cfg.Port, a.cfg.Timeouts)
			if err := server.Start(ctx); err != nil {
				return err
			}

			log.Info().Msg("aaquestions stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&bind, "bind", "b", config.DefaultBind, "IP address to bind to (or set AAQ_HTTP_BIND)")
	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultPort, "HTTP server port (or set AAQ_HTTP_PORT)")

	return cmd
}
