// Package sqlstore keeps finanflow slots in a SQLite database.
package sqlstore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/etnz/finanflow"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// slotRecord is the content of a slot, saved as a whole.
type slotRecord struct {
	Name      string `gorm:"primaryKey"`
	Content   string
	UpdatedAt time.Time
}

func (slotRecord) TableName() string { return "slots" }

// Store is a finanflow.Store backed by a database.
type Store struct {
	db *gorm.DB
}

// Open opens, or creates, the SQLite database at path and migrates its schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	return New(db)
}

// New returns a store using db, migrating its schema.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&slotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

// Load implements finanflow.Store.
func (s *Store) Load(slot finanflow.Slot) (io.ReadCloser, error) {
	var rec slotRecord
	err := s.db.Where("name = ?", string(slot)).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("slot %q: %w", slot, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %q: %w", slot, err)
	}
	return io.NopCloser(bytes.NewBufferString(rec.Content)), nil
}

// Save implements finanflow.Store.
func (s *Store) Save(slot finanflow.Slot, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return fmt.Errorf("error writing slot %q: %w", slot, err)
	}
	rec := slotRecord{Name: string(slot), Content: buf.String()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save slot %q: %w", slot, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
