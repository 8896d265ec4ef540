package kvstore

import (
	"context"
	"errors"
	"time"

	"sitetrack-backend/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore keeps each key as one row of kv_entries. Run database.AutoMigrate first.
type SQLStore struct {
	DB *gorm.DB
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var e domain.KVEntry
	if err := s.DB.WithContext(ctx).Where("kv_key = ?", key).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(e.Value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now().UTC()
	e := domain.KVEntry{Key: key, Value: datatypes.JSON(value), CreatedAt: now, UpdatedAt: now}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updatedAt"}),
	}).Create(&e).Error
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
