// Package testutil provides an in-memory sqlite database and seed helpers for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/snnyvrz/library-manager/internal/db"
	"github.com/snnyvrz/library-manager/internal/model"
)

// NewTestDB opens a private in-memory sqlite database with the schema applied.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database := NewEmptyTestDB(t)
	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return database
}

// NewEmptyTestDB opens a private in-memory sqlite database without tables, so
// every query against it fails.
func NewEmptyTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := db.SQLiteDSN("file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared")
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func SeedWriter(t *testing.T, database *gorm.DB, name string, birthDate time.Time) model.Writer {
	t.Helper()

	writer := model.Writer{
		Name:      name,
		BirthDate: birthDate,
	}
	if err := database.Create(&writer).Error; err != nil {
		t.Fatalf("failed to seed writer %q: %v", name, err)
	}
	return writer
}

// SeedBook stores a book; writer may be nil.
func SeedBook(t *testing.T, database *gorm.DB, writer *model.Writer, title string, releaseDate time.Time) model.Book {
	t.Helper()

	book := model.Book{
		Title:       title,
		ReleaseDate: releaseDate,
	}
	if writer != nil {
		id := writer.ID
		book.WriterID = &id
	}
	if err := database.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	return book
}
