package repo

import (
	"context"
	"time"

	"github.com/KNICEX/analyst-agent/internal/entity"
	"gorm.io/gorm"
)

type QueryRepo interface {
	Create(ctx context.Context, query entity.Query) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]entity.Query, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

type queryRepo struct {
	db *gorm.DB
}

func NewQueryRepo(db *gorm.DB) QueryRepo {
	return &queryRepo{
		db: db,
	}
}

func (r *queryRepo) Create(ctx context.Context, query entity.Query) (int64, error) {
	err := r.db.WithContext(ctx).Create(&query).Error
	if err != nil {
		return 0, err
	}
	return query.Id, nil
}

// FindRecent 按创建时间倒序
func (r *queryRepo) FindRecent(ctx context.Context, limit int) ([]entity.Query, error) {
	var queries []entity.Query
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *queryRepo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", before).Delete(&entity.Query{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
