// Package repository contains the database repositories.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"clipstream/internal/model"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SettingRepository persists key/value settings, including the admin-API flag
type SettingRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSettingRepository creates a new settings repository
func NewSettingRepository(db *bun.DB, logger *zap.Logger) *SettingRepository {
	return &SettingRepository{
		db:     db,
		logger: logger,
	}
}

var _ model.SettingRepository = (*SettingRepository)(nil)

// GetBool returns a boolean setting. ok is false when the key is absent or the
// stored value does not parse.
func (r *SettingRepository) GetBool(ctx context.Context, key string) (bool, bool) {
	row := new(model.Setting)

	err := r.db.NewSelect().
		Model(row).
		Where("key = ?", key).
		Scan(ctx)

	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Warn("Failed to load setting", zap.String("key", key), zap.Error(err))
		}
		return false, false
	}

	value, err := strconv.ParseBool(row.Value)
	if err != nil {
		r.logger.Warn("Setting holds a non-boolean value", zap.String("key", key), zap.String("value", row.Value))
		return false, false
	}

	return value, true
}

// SetBool stores a boolean setting
func (r *SettingRepository) SetBool(ctx context.Context, key string, value bool) error {
	row := &model.Setting{
		Key:       key,
		Value:     strconv.FormatBool(value),
		UpdatedAt: time.Now(),
	}

	_, err := r.db.NewInsert().
		Model(row).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("%w: failed to save setting %s: %v", model.ErrStorage, key, err)
	}

	return nil
}
