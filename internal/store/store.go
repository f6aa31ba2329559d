package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"reflect"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection keys. Each names one persisted board collection.
const (
	KeyTasks   = "tasks"
	KeyTeam    = "team"
	KeyColumns = "columns"
	KeyRoles   = "roles"
)

// Document is one stored collection: the JSON serialization of the whole
// collection as of the last mutation, keyed by logical name.
type Document struct {
	Key       string `gorm:"primarykey;type:varchar(64)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// Store persists board collections as JSON documents. It is deliberately a
// dumb key-value layer: all domain rules live above it.
type Store struct {
	db *gorm.DB
}

// New creates a Store over db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load reads the collection stored under key into dest, which must be a
// pointer already holding the caller's default value. An absent document or
// one whose value no longer parses leaves the default in place rather than
// failing startup; only a real database error is returned.
func (s *Store) Load(key string, dest any) error {
	var doc Document
	if err := s.db.First(&doc, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load document %q: %w", key, err)
	}

	// Decode into a fresh value first: unmarshalling a wrong-shape document
	// directly into dest would partially overwrite the default before the
	// type error surfaces.
	fresh := reflect.New(reflect.TypeOf(dest).Elem())
	if err := json.Unmarshal([]byte(doc.Value), fresh.Interface()); err != nil {
		log.Printf("Stored document %q is malformed, using defaults: %v", key, err)
		return nil
	}
	reflect.ValueOf(dest).Elem().Set(fresh.Elem())
	return nil
}

// Save serializes value and upserts it under key.
func (s *Store) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize document %q: %w", key, err)
	}

	doc := Document{Key: key, Value: string(raw), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to save document %q: %w", key, err)
	}
	return nil
}
