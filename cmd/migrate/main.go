package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/lib/pq"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		log.Fatalf("failed to create migrations table: %v", err)
	}

	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		log.Fatalf("failed to read migrations directory: %v", err)
	}

	var migrationFiles []string
	for _, file := range files {
		name := file.Name()
		if filepath.Ext(name) == ".sql" && !strings.HasSuffix(name, "_rollback.sql") {
			migrationFiles = append(migrationFiles, name)
		}
	}
	sort.Strings(migrationFiles)

	if *rollback {
		rollbackLast(db, migrationsDir)
		return
	}

	for _, file := range migrationFiles {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = $1", file).Scan(&count); err != nil {
			log.Fatalf("failed to check migration status: %v", err)
		}
		if count > 0 {
			fmt.Printf("Migration already applied: %s\n", file)
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsDir, file))
		if err != nil {
			log.Fatalf("failed to read migration %s: %v", file, err)
		}

		tx, err := db.Begin()
		if err != nil {
			log.Fatalf("failed to start transaction: %v", err)
		}

		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			log.Fatalf("failed to apply migration %s: %v", file, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (name) VALUES ($1)", file); err != nil {
			tx.Rollback()
			log.Fatalf("failed to record migration: %v", err)
		}
		if err := tx.Commit(); err != nil {
			log.Fatalf("failed to commit migration: %v", err)
		}

		fmt.Printf("Successfully applied migration: %s\n", file)
	}

	fmt.Println("All migrations applied successfully.")
}

func rollbackLast(db *sql.DB, migrationsDir string) {
	var name string
	err := db.QueryRow(`
		SELECT name
		FROM migrations
		ORDER BY applied_at DESC
		LIMIT 1
	`).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Fatal("No migrations to rollback")
		}
		log.Fatalf("failed to get last migration: %v", err)
	}

	rollbackFile := fmt.Sprintf("%s_rollback.sql", strings.TrimSuffix(name, ".sql"))
	rollbackPath := filepath.Join(migrationsDir, rollbackFile)

	content, err := os.ReadFile(rollbackPath)
	if err != nil {
		log.Fatalf("failed to read rollback file %s: %v", rollbackPath, err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("failed to start transaction: %v", err)
	}
	if _, err := tx.Exec(string(content)); err != nil {
		tx.Rollback()
		log.Fatalf("failed to execute rollback: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM migrations WHERE name = $1", name); err != nil {
		tx.Rollback()
		log.Fatalf("failed to remove migration record: %v", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("failed to commit rollback: %v", err)
	}

	fmt.Printf("Successfully rolled back migration: %s\n", name)
}
