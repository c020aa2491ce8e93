package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type kvRecord struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

func (kvRecord) TableName() string {
	return "kv"
}

type PostgresStorage struct {
	Connection *gorm.DB
}

func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	return &PostgresStorage{Connection: conn}, nil
}

func (that *PostgresStorage) Init(ctx context.Context) error {
	if err := that.Connection.WithContext(ctx).AutoMigrate(&kvRecord{}); err != nil {
		return fmt.Errorf("can't migrate table: %w", err)
	}

	return nil
}

func (that *PostgresStorage) Get(ctx context.Context, key string) (string, error) {
	var record kvRecord

	err := that.Connection.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("can't get %s: %w", key, err)
	}

	return record.Value, nil
}

func (that *PostgresStorage) Set(ctx context.Context, key, value string) error {
	record := kvRecord{Key: key, Value: value}

	err := that.Connection.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("can't set %s: %w", key, err)
	}

	return nil
}

func (that *PostgresStorage) Delete(ctx context.Context, key string) error {
	if err := that.Connection.WithContext(ctx).Where("key = ?", key).Delete(&kvRecord{}).Error; err != nil {
		return fmt.Errorf("can't delete %s: %w", key, err)
	}

	return nil
}

func (that *PostgresStorage) Close() error {
	db, err := that.Connection.DB()
	if err != nil {
		return fmt.Errorf("can't get database handle: %w", err)
	}

	return db.Close()
}
