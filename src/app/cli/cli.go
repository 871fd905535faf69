// Package cli defines the command line of the economia binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"economia/src/app/server"
	"economia/src/core/domain"
	"economia/src/infra/config"
	"economia/src/infra/crypto"
	"economia/src/infra/db"
	"economia/src/infra/logger"
	"economia/src/infra/repo"
)

// NewRootCommand builds the command tree. Running the binary without a
// subcommand serves HTTP.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "economia",
		Short:         "Economia em Foco - news backend",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	})
	root.AddCommand(newMigrateCommand())

	return root
}

// Execute runs the root command and returns its error.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, pg *db.Postgres, _ *slog.Logger) error {
					return db.NewMigrator(pg).Up(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, pg *db.Postgres, _ *slog.Logger) error {
					return db.NewMigrator(pg).Down(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, pg *db.Postgres, _ *slog.Logger) error {
					statuses, err := db.NewMigrator(pg).Status(ctx)
					if err != nil {
						return err
					}
					return printStatus(cmd.OutOrStdout(), statuses)
				})
			},
		},
	)
	return cmd
}

func printStatus(out io.Writer, statuses []db.MigrationStatus) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tNAME\tAPPLIED AT")
	for _, s := range statuses {
		applied := "pending"
		if s.Applied {
			applied = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.Version, s.Name, applied)
	}
	return w.Flush()
}

// withDatabase loads configuration, opens the pool and closes it once fn
// returns.
func withDatabase(ctx context.Context, fn func(ctx context.Context, pg *db.Postgres, log *slog.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	return fn(ctx, pg, log)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"version", cmd.Root().Version,
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	if cfg.Database.AutoMigrate {
		if err := db.NewMigrator(pg).Up(ctx); err != nil {
			return err
		}
	}

	store := repo.NewPostgresRepository(pg, log)

	srv, err := server.New(cfg, log, server.Dependencies{
		Health:     store,
		Articles:   store.Articles,
		Users:      store.Users,
		Categories: store.Categories,
		Hasher:     crypto.NewBcryptHasher(domain.PasswordCost),
	})
	if err != nil {
		return err
	}

	// Run blocks until ctx is cancelled by SIGINT or SIGTERM
	return srv.Run(ctx)
}
