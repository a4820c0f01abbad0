package repo

import (
	"Portfolio/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdminRepository доступ к учётным записям администраторов.
type AdminRepository interface {
	// GetByEmail возвращает администратора или gorm.ErrRecordNotFound.
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	// CreateIfAbsent создаёт запись, если администратора с таким uuid/email ещё нет.
	CreateIfAbsent(ctx context.Context, admin *model.Admin) (created bool, err error)
}

type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepository создаёт реализацию репозитория администраторов.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) CreateIfAbsent(ctx context.Context, admin *model.Admin) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(admin)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
