package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) ListOptions(ctx context.Context, q repo.ProductOptionQuery) ([]model.Product, error) {
	limit := q.Limit
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	query := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("is_active = ?", true)

	if q.Q != "" {
		query = query.Where("name ILIKE ?", "%"+q.Q+"%")
	}

	var items []model.Product
	if err := query.Order("name asc").Limit(limit).Find(&items).Error; err != nil {
		return []model.Product{}, err
	}
	return items, nil
}
