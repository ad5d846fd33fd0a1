package database

import (
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationDialect = "sqlite3"

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// Migrate applies pending migrations in the given direction and returns how
// many ran. A zero max applies all of them.
func (s *DB) Migrate(direction migrate.MigrationDirection, max int) (int, error) {
	log := s.log.Function("Migrate")

	if s.SQL == nil {
		return 0, log.Error("database is not configured")
	}

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return 0, log.Err("failed to get database from GORM", err)
	}

	applied, err := migrate.ExecMax(sqlDB, migrationDialect, migrationSource(), direction, max)
	if err != nil {
		return applied, log.Err("failed to apply migrations", err, "direction", direction)
	}

	log.Info("Applied migrations", "count", applied, "direction", direction)
	return applied, nil
}
