package repo

import (
	"context"
	"github.com/KNICEX/spread-monitor/internal/entity"
	"gorm.io/gorm"
)

type MovementRepo interface {
	Create(ctx context.Context, movement entity.Movement) (int64, error)
	FindBySymbol(ctx context.Context, symbol string) ([]entity.Movement, error)
}

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepo(db *gorm.DB) MovementRepo {
	return &movementRepo{
		db: db,
	}
}

func (r *movementRepo) Create(ctx context.Context, movement entity.Movement) (int64, error) {
	err := r.db.WithContext(ctx).Create(&movement).Error
	if err != nil {
		return 0, err
	}
	return movement.Id, nil
}

func (r *movementRepo) FindBySymbol(ctx context.Context, symbol string) ([]entity.Movement, error) {
	var movements []entity.Movement
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).Order("created_at").Find(&movements).Error
	if err != nil {
		return nil, err
	}
	return movements, nil
}
