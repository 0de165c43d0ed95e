package repo

import (
	"github.com/KNICEX/analyst-agent/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Query{})
}
