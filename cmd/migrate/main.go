// Command migrate inspects and changes the database schema.
//
//	migrate up          apply pending SQL migrations
//	migrate auto        run GORM AutoMigrate over the persistent models
//	migrate status      print the schema policy and pending migrations
//	migrate down N      roll back applied migration N
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"postboard/internal/config"
	"postboard/internal/database"

	"gorm.io/gorm"
)

type command func(ctx context.Context, db *gorm.DB, cfg *config.Config, args []string) error

var commands = map[string]command{
	"up":     up,
	"auto":   auto,
	"status": status,
	"down":   down,
}

var errUsage = errors.New("usage: migrate [-timeout 2m] <up|auto|status|down N>")

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "Abort if the operation takes longer")
	flag.Parse()

	if err := run(*timeout, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(timeout time.Duration, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[strings.ToLower(strings.TrimSpace(args[0]))]
	if !ok {
		return errUsage
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return cmd(ctx, db, cfg, args[1:])
}

func migrator(db *gorm.DB) (*database.Migrator, error) {
	migrations, err := database.EmbeddedMigrations()
	if err != nil {
		return nil, err
	}
	return database.NewMigrator(db, migrations), nil
}

func up(ctx context.Context, db *gorm.DB, _ *config.Config, _ []string) error {
	m, err := migrator(db)
	if err != nil {
		return err
	}
	n, err := m.Up(ctx)
	if err != nil {
		return fmt.Errorf("sql migrations failed: %w", err)
	}
	log.Printf("applied %d migration(s)", n)
	return nil
}

func auto(ctx context.Context, db *gorm.DB, cfg *config.Config, _ []string) error {
	cfg.DBSchemaMode = database.SchemaModeAuto
	if err := database.ApplySchema(ctx, db, cfg); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	log.Println("automigrate complete")
	return nil
}

func status(ctx context.Context, db *gorm.DB, cfg *config.Config, _ []string) error {
	st, err := database.GetSchemaStatus(ctx, db, cfg)
	if err != nil {
		return fmt.Errorf("schema status failed: %w", err)
	}
	log.Printf("driver=%s env=%s mode=%s sql=%t auto=%t applied=%v",
		st.Driver, st.Environment, st.Mode, st.WillRunSQL, st.WillRunAutoMigrate, st.AppliedVersions)
	for _, m := range st.PendingMigrations {
		log.Printf("pending %s", m)
	}
	return nil
}

func down(ctx context.Context, db *gorm.DB, _ *config.Config, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	version, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", args[0], err)
	}
	m, err := migrator(db)
	if err != nil {
		return err
	}
	if err := m.Down(ctx, version); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	log.Printf("rolled back migration %d", version)
	return nil
}
