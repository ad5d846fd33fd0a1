package seed

import (
	"path/filepath"
	"testing"

	"github.com/amitsingh771/Numerology/cmd/migration/initialize"
	"github.com/amitsingh771/Numerology/config"
	"github.com/amitsingh771/Numerology/internal/database"
	"github.com/amitsingh771/Numerology/internal/logger"
	. "github.com/amitsingh771/Numerology/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	cfg := config.Config{
		DatabaseDbPath:   filepath.Join(t.TempDir(), "seed.db"),
		FortuneTablePath: "../../../data/combination_fortune.json",
	}
	log := logger.New("test")

	db, err := database.New(cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, initialize.InitializeTables(db, cfg, log))

	created, err := Seed(db.SQL, cfg, log)
	require.NoError(t, err)
	assert.Equal(t, 12, created)

	created, err = Seed(db.SQL, cfg, log)
	require.NoError(t, err)
	assert.Zero(t, created, "reseeding skips existing rows")

	var first FortuneRecord
	require.NoError(t, db.SQL.Order("position ASC").First(&first).Error)
	assert.Equal(t, "1/1", first.Combination)
	assert.Equal(t, 1, first.Position)
}

func TestSeed_MissingFile(t *testing.T) {
	cfg := config.Config{
		DatabaseDbPath:   filepath.Join(t.TempDir(), "seed.db"),
		FortuneTablePath: "missing.json",
	}

	db, err := database.New(cfg)
	require.NoError(t, err)
	defer db.Close()

	_, err = Seed(db.SQL, cfg, logger.New("test"))
	assert.ErrorContains(t, err, "failed to open fortune table")
}
