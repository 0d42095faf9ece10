package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"FlowerShop/models"
)

// GormStore keeps cart records in a SQL table through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.CartRecord{}); err != nil {
		return nil, fmt.Errorf("migrate cart records: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Load(ctx context.Context, key string) ([]byte, error) {
	var record models.CartRecord
	err := g.db.WithContext(ctx).
		Where("record_key = ?", key).
		First(&record).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query cart record: %w", err)
	}
	return []byte(record.Payload), nil
}

func (g *GormStore) Save(ctx context.Context, key string, value []byte) error {
	record := models.CartRecord{
		RecordKey: key,
		Payload:   string(value),
	}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).
		Error
	if err != nil {
		return fmt.Errorf("upsert cart record: %w", err)
	}
	return nil
}
