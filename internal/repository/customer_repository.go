package repository

import (
	"context"

	"github.com/VinodVen/growthai/internal/model"
	"gorm.io/gorm"
)

type CustomerRepositoryInterface interface {
	ListByBusiness(ctx context.Context, businessID uint, limit int) ([]model.Customer, error)
	Count(ctx context.Context, businessID uint) (int64, error)
}

type CustomerRepository struct {
	DB *gorm.DB
}

// ListByBusiness returns the newest customers first. A limit <= 0 returns all.
func (r *CustomerRepository) ListByBusiness(ctx context.Context, businessID uint, limit int) ([]model.Customer, error) {
	customers := []model.Customer{}
	query := r.DB.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) Count(ctx context.Context, businessID uint) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.Customer{}).Where("business_id = ?", businessID).Count(&total).Error
	return total, err
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
