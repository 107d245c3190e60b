package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Rrens/kopiloka/internal/config"
	"github.com/Rrens/kopiloka/internal/repository/postgres"
	"github.com/joho/godotenv"
)

func main() {
	down := flag.Int("down", 0, "number of migrations to roll back")
	version := flag.Bool("version", false, "print the current schema version and exit")
	flag.Parse()

	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fail("Failed to load config: %v", err)
	}

	dsn := cfg.Database.DSN()
	source := cfg.Database.MigrationsURL
	fmt.Printf("Migrating database at %s:%d from %s\n", cfg.Database.Host, cfg.Database.Port, source)

	switch {
	case *version:
		v, dirty, err := postgres.MigrationVersion(dsn, source)
		if err != nil {
			fail("Failed to read version: %v", err)
		}
		fmt.Printf("version=%d dirty=%t\n", v, dirty)

	case *down > 0:
		if err := postgres.RollbackMigrations(dsn, source, *down); err != nil {
			fail("Rollback failed: %v", err)
		}
		fmt.Printf("Rolled back %d migration(s)\n", *down)

	default:
		if err := postgres.RunMigrations(dsn, source); err != nil {
			fail("Migration failed: %v", err)
		}
		fmt.Println("Migrations applied")
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
