package repositories

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/amitsingh771/Numerology/config"
	"github.com/amitsingh771/Numerology/internal/database"
	. "github.com/amitsingh771/Numerology/internal/models"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "combination_fortune.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestFortuneRepository_Lookup(t *testing.T) {
	path := writeTable(t, `[
		{"combination": "1/4", "description": "rises and falls", "roles_profession": "engineering"},
		{"combination": "2/2", "description": "moon", "roles_profession": "music"}
	]`)

	repo := LoadFortunesFromFile(path)
	require.Equal(t, 2, repo.Len())

	record, ok := repo.Lookup(1, 4)
	require.True(t, ok)
	assert.Equal(t, "1/4", record.Combination)
	assert.Equal(t, "rises and falls", record.Description)
	assert.Equal(t, "engineering", record.RolesProfession)
	assert.Equal(t, 1, record.Position)

	_, ok = repo.Lookup(4, 1)
	assert.False(t, ok, "keys are ordered driver/conductor")
}

func TestFortuneRepository_Miss(t *testing.T) {
	repo := LoadFortunesFromFile(writeTable(t, `[{"combination": "2/2", "description": "moon"}]`))

	record, ok := repo.Lookup(1, 4)
	assert.False(t, ok)
	assert.Equal(t, FortuneRecord{}, record)
}

func TestFortuneRepository_FirstMatchWins(t *testing.T) {
	repo := LoadFortunesFromFile(writeTable(t, `[
		{"combination": "1/4", "description": "first"},
		{"combination": "1/4", "description": "second"}
	]`))

	record, ok := repo.Lookup(1, 4)
	require.True(t, ok)
	assert.Equal(t, "first", record.Description)
}

func TestFortuneRepository_FailSoft(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name: "not json",
			path: func(t *testing.T) string { return writeTable(t, "combination,description") },
		},
		{
			name: "object instead of array",
			path: func(t *testing.T) string { return writeTable(t, `{"combination": "1/4"}`) },
		},
		{
			name: "wrong field type",
			path: func(t *testing.T) string { return writeTable(t, `[{"combination": 14}]`) },
		},
		{
			name: "truncated",
			path: func(t *testing.T) string { return writeTable(t, `[{"combination": "1/4"`) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := LoadFortunesFromFile(tt.path(t))

			assert.Equal(t, 0, repo.Len())
			assert.NotPanics(t, func() {
				_, ok := repo.Lookup(1, 4)
				assert.False(t, ok)
			})
		})
	}
}

func TestFortuneRepository_ShippedTable(t *testing.T) {
	repo := LoadFortunesFromFile(filepath.Join("..", "..", "data", "combination_fortune.json"))
	require.Greater(t, repo.Len(), 0)

	seen := map[string]bool{}
	for _, record := range repo.All() {
		assert.False(t, seen[record.Combination], "duplicate combination %s", record.Combination)
		seen[record.Combination] = true
		assert.Regexp(t, `^[1-9]/[1-9]$`, record.Combination)
		assert.NotEmpty(t, record.Description)
	}

	_, ok := repo.Lookup(1, 4)
	assert.True(t, ok)
}

func TestFortuneRepository_AllReturnsCopy(t *testing.T) {
	repo := NewFortuneTable("test", []FortuneRecord{{Combination: "1/4", Description: "original"}})

	all := repo.All()
	all[0].Description = "changed"

	record, _ := repo.Lookup(1, 4)
	assert.Equal(t, "original", record.Description)
	assert.Equal(t, "test", repo.Source())
}

func TestFortuneRepository_ConcurrentReaders(t *testing.T) {
	repo := NewFortuneTable("test", []FortuneRecord{
		{Combination: "1/4", Description: "a"},
		{Combination: "9/9", Description: "b"},
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, ok := repo.Lookup(1, 4)
				assert.True(t, ok)
				_, ok = repo.Lookup(i%9+1, 0)
				assert.False(t, ok)
			}
		}(i)
	}
	wg.Wait()
}

func TestParseFortunes(t *testing.T) {
	records, err := ParseFortunes(strings.NewReader(`[{"combination":"3/3"},{"combination":"1/1"}]`))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Position)
	assert.Equal(t, 2, records[1].Position)

	_, err = ParseFortunes(strings.NewReader(`nope`))
	assert.ErrorContains(t, err, "decode fortune table")
}

func TestLoadFortunesFromDB(t *testing.T) {
	db, err := database.New(config.Config{DatabaseDbPath: filepath.Join(t.TempDir(), "fortunes.db")})
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	assert.Equal(t, 0, LoadFortunesFromDB(ctx, db).Len(), "missing table reads as empty")

	_, err = db.Migrate(migrate.Up, 0)
	require.NoError(t, err)

	seed := []FortuneRecord{
		{Position: 2, Combination: "1/4", Description: "second"},
		{Position: 1, Combination: "1/4", Description: "first"},
		{Position: 3, Combination: "5/5", Description: "mercury"},
	}
	require.NoError(t, db.SQLWithContext(ctx).Create(&seed).Error)

	repo := LoadFortunesFromDB(ctx, db)
	require.Equal(t, 3, repo.Len())

	record, ok := repo.Lookup(1, 4)
	require.True(t, ok)
	assert.Equal(t, "first", record.Description, "position order decides the first match")
}

func TestLoadFortunesFromDB_NoDatabase(t *testing.T) {
	repo := LoadFortunesFromDB(context.Background(), database.DB{})
	assert.Equal(t, 0, repo.Len())
}

func TestNewFortune_SelectsSource(t *testing.T) {
	path := writeTable(t, `[{"combination": "1/4", "description": "file"}]`)

	fileRepo := NewFortune(context.Background(), config.Config{
		FortuneSource:    config.FortuneSourceFile,
		FortuneTablePath: path,
	}, database.DB{})
	assert.Equal(t, 1, fileRepo.Len())
	assert.Equal(t, "file:"+path, fileRepo.Source())

	sqliteRepo := NewFortune(context.Background(), config.Config{
		FortuneSource: config.FortuneSourceSQLite,
	}, database.DB{})
	assert.Equal(t, 0, sqliteRepo.Len())
	assert.Equal(t, "sqlite:combination_fortunes", sqliteRepo.Source())
}
