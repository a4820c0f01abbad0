package repo

import (
	"Portfolio/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenRepository — реестр действующих токенов, одна запись на email.
type TokenRepository interface {
	// Upsert записывает токен для email: вставка либо замена старого значения.
	Upsert(ctx context.Context, rec *model.TokenRecord) error
	// Exists проверяет, что есть запись, у которой совпадают и uuid, и token.
	Exists(ctx context.Context, uuid int64, token string) (bool, error)
}

type tokenRepo struct {
	db *gorm.DB
}

// NewTokenRepository создаёт реализацию реестра токенов.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Upsert(ctx context.Context, rec *model.TokenRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "uuid"}),
	}).Create(rec).Error
}

func (r *tokenRepo) Exists(ctx context.Context, uuid int64, token string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.TokenRecord{}).
		Where("token = ? AND uuid = ?", token, uuid).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
