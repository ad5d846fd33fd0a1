package initialize

import (
	"github.com/amitsingh771/Numerology/config"
	"github.com/amitsingh771/Numerology/internal/database"
	"github.com/amitsingh771/Numerology/internal/logger"

	migrate "github.com/rubenv/sql-migrate"
)

// InitializeTables brings the schema up to date.
func InitializeTables(db database.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing reference tables", "dbPath", config.DatabaseDbPath)

	applied, err := db.Migrate(migrate.Up, 0)
	if err != nil {
		return log.Err("failed to migrate tables", err)
	}

	log.Info("Table initialization complete", "applied", applied)
	return nil
}
