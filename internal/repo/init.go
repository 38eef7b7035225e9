package repo

import (
	"github.com/KNICEX/spread-monitor/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Movement{}, &entity.WindowReport{})
}
