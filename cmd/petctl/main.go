package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"pet-care-hub/internal/adapters/storage/sqlstore"
	"pet-care-hub/internal/adapters/storage/sqlstore/migrations"
	"pet-care-hub/internal/config"
	"pet-care-hub/internal/domain/duedate"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDB carga la config y abre la base. El llamador cierra la conexión.
func openDB() (*sql.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	var dsn string
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		dsn = cfg.Storage.DSN
	case config.StorageSQLite:
		dsn = cfg.Storage.SQLitePath
	default:
		return nil, nil, errors.New("migrations need STORAGE=postgres or STORAGE=sqlite")
	}

	db, err := sqlstore.Open(cfg.Storage.Driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return db, cfg, nil
}

var rootCmd = &cobra.Command{
	Use:   "petctl",
	Short: "Pet Care Hub admin tool",
}

// migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.MigrateUp(db, cfg.Storage.Driver); err != nil {
			return err
		}
		st, err := migrations.GetStatus(db, cfg.Storage.Driver)
		if err != nil {
			return err
		}
		fmt.Printf("Schema at version %d\n", st.Version)
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		st, err := migrations.GetStatus(db, cfg.Storage.Driver)
		if err != nil {
			return err
		}
		fmt.Printf("Driver:  %s\n", cfg.Storage.Driver)
		fmt.Printf("Version: %d\n", st.Version)
		fmt.Printf("Latest:  %d\n", st.Latest)
		fmt.Printf("Dirty:   %v\n", st.Dirty)

		if err := migrations.CheckDBMigrationStatus(db, cfg.Storage.Driver); err != nil {
			fmt.Printf("\n%v\n", err)
		}
		return nil
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default TOML config",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "petcare.toml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Init(path, config.Default()); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		fmt.Printf("Configuration initialized at %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.Auth.JWTSecret = "********"
		cfg.Redis.Password = ""
		return config.Write(cmd.OutOrStdout(), cfg)
	},
}

// classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <YYYY-MM-DD>",
	Short: "Show the due-date bucket for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		completed, _ := cmd.Flags().GetBool("completed")
		tz, _ := cmd.Flags().GetString("tz")

		due, err := duedate.ParseDate(args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", args[0], err)
		}
		now, err := duedate.NowIn(time.Now(), tz, time.Local)
		if err != nil {
			return err
		}

		b := duedate.Classify(due, completed, now)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", b.Label, b.Status, b.StyleHint)
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	classifyCmd.Flags().Bool("completed", false, "Treat the reminder as completed")
	classifyCmd.Flags().String("tz", "", "IANA time zone for today (default local)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(classifyCmd)
}
