package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tribald/internal/common/fsutil"
	"tribald/pkg/types"
)

// Artwork is one persisted generation. The English text is the cache key:
// a repeated generation that produces the same English reuses the row's
// translations instead of calling the translation engine again.
type Artwork struct {
	ID        uint   `gorm:"primaryKey"`
	English   string `gorm:"uniqueIndex;not null"`
	ArtName   string
	ArtStyle  string
	Region    string
	Question  string
	Hindi     string
	Marathi   string
	Bengali   string
	Tamil     string
	Telugu    string
	ImagePath string
	CreatedAt time.Time
}

// Translation returns the stored text for a language name, or "".
func (a *Artwork) Translation(language string) string {
	switch language {
	case "hindi":
		return a.Hindi
	case "marathi":
		return a.Marathi
	case "bengali":
		return a.Bengali
	case "tamil":
		return a.Tamil
	case "telugu":
		return a.Telugu
	}
	return ""
}

// SetTranslation stores text under a language name. Unknown names are ignored.
func (a *Artwork) SetTranslation(language, text string) {
	switch language {
	case "hindi":
		a.Hindi = text
	case "marathi":
		a.Marathi = text
	case "bengali":
		a.Bengali = text
	case "tamil":
		a.Tamil = text
	case "telugu":
		a.Telugu = text
	}
}

// Record converts the row to its API shape.
func (a *Artwork) Record() types.ArtworkRecord {
	return types.ArtworkRecord{
		ID:        a.ID,
		ArtName:   a.ArtName,
		ArtStyle:  a.ArtStyle,
		Region:    a.Region,
		Question:  a.Question,
		English:   a.English,
		Hindi:     a.Hindi,
		Marathi:   a.Marathi,
		Bengali:   a.Bengali,
		Tamil:     a.Tamil,
		Telugu:    a.Telugu,
		CreatedAt: a.CreatedAt.Unix(),
	}
}

// Store wraps the sqlite database holding artwork rows.
type Store struct {
	db *gorm.DB
}

// Open ensures the parent directory exists, opens the sqlite file and
// migrates the schema.
func Open(path string) (*Store, error) {
	p, err := fsutil.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(sqlite.Open(p), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&Artwork{}); err != nil {
		return nil, fmt.Errorf("migrate artwork schema: %w", err)
	}
	return &Store{db: db}, nil
}

// FindByEnglish returns the row keyed by the exact English text, or
// (nil, nil) when absent.
func (s *Store) FindByEnglish(ctx context.Context, english string) (*Artwork, error) {
	var a Artwork
	err := s.db.WithContext(ctx).Where("english = ?", english).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Save inserts the row, or merges translations (and any newly known
// metadata) into the existing row with the same English text.
func (s *Store) Save(ctx context.Context, a *Artwork) error {
	existing, err := s.FindByEnglish(ctx, a.English)
	if err != nil {
		return err
	}
	if existing == nil {
		return s.db.WithContext(ctx).Create(a).Error
	}
	for _, lang := range []string{"hindi", "marathi", "bengali", "tamil", "telugu"} {
		if v := a.Translation(lang); v != "" {
			existing.SetTranslation(lang, v)
		}
	}
	if existing.Question == "" {
		existing.Question = a.Question
	}
	if existing.ImagePath == "" {
		existing.ImagePath = a.ImagePath
	}
	return s.db.WithContext(ctx).Save(existing).Error
}

// List returns rows newest-first.
func (s *Store) List(ctx context.Context, offset, limit int) ([]Artwork, error) {
	var rows []Artwork
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of persisted rows.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Artwork{}).Count(&n).Error
	return n, err
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
