package seed

import (
	"os"

	"github.com/amitsingh771/Numerology/config"
	"github.com/amitsingh771/Numerology/internal/logger"
	. "github.com/amitsingh771/Numerology/internal/models"
	"github.com/amitsingh771/Numerology/internal/repositories"

	"gorm.io/gorm"
)

// Seed copies the combination fortune JSON file into the database. Rows that
// already exist at the same position with the same combination are skipped.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) (int, error) {
	log = log.Function("seed")
	log.Info("Seeding combination fortunes", "path", config.FortuneTablePath)

	file, err := os.Open(config.FortuneTablePath)
	if err != nil {
		return 0, log.Err("failed to open fortune table", err, "path", config.FortuneTablePath)
	}
	defer file.Close()

	records, err := repositories.ParseFortunes(file)
	if err != nil {
		return 0, log.Err("failed to parse fortune table", err, "path", config.FortuneTablePath)
	}

	created := 0
	for _, record := range records {
		var existing FortuneRecord
		err := db.Where("position = ? AND combination = ?", record.Position, record.Combination).
			First(&existing).Error
		if err == nil {
			log.Debug("Fortune already exists", "combination", record.Combination, "position", record.Position)
			continue
		}

		if err := db.Create(&record).Error; err != nil {
			return created, log.Err("failed to create fortune", err, "combination", record.Combination)
		}
		created++
	}

	log.Info("Seeded combination fortunes", "created", created, "records", len(records))
	return created, nil
}
