package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fit-planner/internal/model"
)

// RecordRepository stores JSON documents under string keys.
type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Get decodes the record stored under key into dst. A missing key is not an error.
func (r *RecordRepository) Get(ctx context.Context, key string, dst any) (bool, error) {
	var rec model.Record
	err := r.db.WithContext(ctx).Where("record_key = ?", key).First(&rec).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("find record %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(rec.Value), dst); err != nil {
		return false, fmt.Errorf("decode record %q: %w", key, err)
	}
	return true, nil
}

// Put writes v under key, replacing any previous value.
func (r *RecordRepository) Put(ctx context.Context, userID uint, key string, v any) error {
	return put(r.db.WithContext(ctx), userID, key, v)
}

// PutAll writes every entry in one transaction; either all are stored or none.
func (r *RecordRepository) PutAll(ctx context.Context, userID uint, values map[string]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, v := range values {
			if err := put(tx, userID, key, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RecordRepository) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("record_key = ?", key).Delete(&model.Record{}).Error; err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}

// ListKeys returns keys owned by userID that start with prefix.
func (r *RecordRepository) ListKeys(ctx context.Context, userID uint, prefix string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&model.Record{}).
		Where("user_id = ? AND record_key LIKE ?", userID, prefix+"%").
		Order("record_key ASC").
		Pluck("record_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return keys, nil
}

func put(db *gorm.DB, userID uint, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", key, err)
	}
	rec := model.Record{Key: key, UserID: userID, Value: string(raw)}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}
