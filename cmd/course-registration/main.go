// course-registration is a menu-driven course registration system.
// Students sign up, log in and enroll in courses; admins manage courses,
// students, registrations and other admins. All state lives for one run.
//
// Running:
//
//	go run ./cmd/course-registration --config=config/local.yaml
//
// or, with the environment only:
//
//	AUTH_HASHER=plain go run ./cmd/course-registration
package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/aanand-mishra/course-registration/internal/admin"
	"github.com/aanand-mishra/course-registration/internal/auth"
	"github.com/aanand-mishra/course-registration/internal/config"
	"github.com/aanand-mishra/course-registration/internal/console"
	"github.com/aanand-mishra/course-registration/internal/course"
	"github.com/aanand-mishra/course-registration/internal/enrollment"
	"github.com/aanand-mishra/course-registration/internal/storage"
	"github.com/aanand-mishra/course-registration/internal/storage/memory"
	"github.com/aanand-mishra/course-registration/internal/storage/sqlite"
	"github.com/aanand-mishra/course-registration/internal/student"
	"github.com/aanand-mishra/course-registration/internal/types"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "course-registration",
	Short: "Menu-driven course registration",
	Long: `Interactive course registration system.

Students register, log in and enroll in courses. Admins manage courses,
students, registrations and admin accounts. A default admin is created
the first time the admin portal is opened.

Nothing is kept between runs.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration YAML file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	log.Info("starting course-registration",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("hasher", cfg.Auth.Hasher))

	verifier, err := auth.New(cfg.Auth.Hasher, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	svc, closeStorage, err := buildServices(cfg, verifier)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		return err
	}
	defer closeStorage()

	if err := console.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run(); err != nil {
		log.Error("console stopped", slog.String("error", err.Error()))
		return err
	}

	log.Info("course-registration stopped")
	return nil
}

// buildServices gives each directory its own collection on the configured
// backend.
func buildServices(cfg *config.Config, verifier auth.Verifier) (console.Services, func(), error) {
	var db *sql.DB
	closeFn := func() {}

	if cfg.Storage.Driver == storage.DriverSQLite {
		var err error
		db, err = sqlite.Open(cfg.Storage.Path)
		if err != nil {
			return console.Services{}, closeFn, err
		}
		closeFn = func() { db.Close() }
	}

	students, err := collection[types.Student](db, "students")
	if err != nil {
		closeFn()
		return console.Services{}, func() {}, err
	}
	courses, err := collection[types.Course](db, "courses")
	if err != nil {
		closeFn()
		return console.Services{}, func() {}, err
	}
	registrations, err := collection[types.Registration](db, "registrations")
	if err != nil {
		closeFn()
		return console.Services{}, func() {}, err
	}
	admins, err := collection[types.Admin](db, "admins")
	if err != nil {
		closeFn()
		return console.Services{}, func() {}, err
	}

	return console.Services{
		Students: student.New(students, verifier),
		Courses:  course.New(courses),
		Ledger:   enrollment.New(registrations),
		Admins: admin.New(admins, verifier,
			admin.WithDefaultCredentials(cfg.Admin.Username, cfg.Admin.Password)),
	}, closeFn, nil
}

// collection returns an in-memory collection when db is nil, otherwise a
// SQLite table named table.
func collection[T storage.Entity](db *sql.DB, table string) (storage.Collection[T], error) {
	if db == nil {
		return memory.New[T](), nil
	}
	c, err := sqlite.New[T](db, table)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", table, err)
	}
	return c, nil
}

// setupLogger returns a *slog.Logger configured for the given environment.
// Logs go to stderr; stdout belongs to the menu.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
}
