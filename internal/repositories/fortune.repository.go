package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/amitsingh771/Numerology/config"
	"github.com/amitsingh771/Numerology/internal/database"
	"github.com/amitsingh771/Numerology/internal/logger"
	. "github.com/amitsingh771/Numerology/internal/models"
)

// FortuneRepository is the read-only combination fortune table. It is loaded
// once and safe for concurrent use.
type FortuneRepository interface {
	Lookup(driver, conductor int) (FortuneRecord, bool)
	All() []FortuneRecord
	Len() int
	Source() string
}

type fortuneRepository struct {
	records []FortuneRecord
	source  string
}

// NewFortuneTable wraps records, in order, as a FortuneRepository.
func NewFortuneTable(source string, records []FortuneRecord) FortuneRepository {
	table := make([]FortuneRecord, len(records))
	copy(table, records)
	return &fortuneRepository{records: table, source: source}
}

// NewFortune loads the table from the source named in config. Failures are
// logged and produce an empty table.
func NewFortune(ctx context.Context, cfg config.Config, db database.DB) FortuneRepository {
	if cfg.FortuneSource == config.FortuneSourceSQLite {
		return LoadFortunesFromDB(ctx, db)
	}
	return LoadFortunesFromFile(cfg.FortuneTablePath)
}

// LoadFortunesFromFile reads a JSON array of fortune records from path. A
// missing or malformed file yields an empty table.
func LoadFortunesFromFile(path string) FortuneRepository {
	log := logger.New("fortuneRepository").Function("LoadFortunesFromFile")
	source := "file:" + path

	file, err := os.Open(path)
	if err != nil {
		log.Warn("fortune table unavailable, every lookup will miss", "path", path, "error", err)
		return NewFortuneTable(source, nil)
	}
	defer file.Close()

	records, err := ParseFortunes(file)
	if err != nil {
		log.Warn("fortune table unreadable, every lookup will miss", "path", path, "error", err)
		return NewFortuneTable(source, nil)
	}

	log.Info("Loaded fortune table", "path", path, "records", len(records))
	return NewFortuneTable(source, records)
}

// LoadFortunesFromDB reads the seeded combination_fortunes table in position
// order. A missing database or table yields an empty table.
func LoadFortunesFromDB(ctx context.Context, db database.DB) FortuneRepository {
	log := logger.New("fortuneRepository").Function("LoadFortunesFromDB")
	source := "sqlite:" + FortuneRecord{}.TableName()

	if db.SQL == nil {
		log.Warn("database not configured, every lookup will miss")
		return NewFortuneTable(source, nil)
	}

	var records []FortuneRecord
	if err := db.SQLWithContext(ctx).Order("position ASC, id ASC").Find(&records).Error; err != nil {
		log.Warn("fortune table unreadable, every lookup will miss", "error", err)
		return NewFortuneTable(source, nil)
	}

	log.Info("Loaded fortune table", "source", source, "records", len(records))
	return NewFortuneTable(source, records)
}

// ParseFortunes decodes a JSON array of records and numbers them by position.
func ParseFortunes(r io.Reader) ([]FortuneRecord, error) {
	var records []FortuneRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode fortune table: %w", err)
	}

	for i := range records {
		records[i].Position = i + 1
	}
	return records, nil
}

// Lookup returns the first record whose combination is "driver/conductor".
func (r *fortuneRepository) Lookup(driver, conductor int) (FortuneRecord, bool) {
	key := CombinationKey(driver, conductor)
	for _, record := range r.records {
		if record.Combination == key {
			return record, true
		}
	}
	return FortuneRecord{}, false
}

func (r *fortuneRepository) All() []FortuneRecord {
	records := make([]FortuneRecord, len(r.records))
	copy(records, r.records)
	return records
}

func (r *fortuneRepository) Len() int {
	return len(r.records)
}

func (r *fortuneRepository) Source() string {
	return r.source
}
