package repo

import (
	"context"
	"github.com/KNICEX/spread-monitor/internal/entity"
	"gorm.io/gorm"
)

type ReportRepo interface {
	Create(ctx context.Context, report entity.WindowReport) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]entity.WindowReport, error)
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &reportRepo{
		db: db,
	}
}

func (r *reportRepo) Create(ctx context.Context, report entity.WindowReport) (int64, error) {
	err := r.db.WithContext(ctx).Create(&report).Error
	if err != nil {
		return 0, err
	}
	return report.Id, nil
}

func (r *reportRepo) FindRecent(ctx context.Context, limit int) ([]entity.WindowReport, error) {
	var reports []entity.WindowReport
	err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
