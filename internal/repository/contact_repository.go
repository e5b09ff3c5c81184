package repository

import (
	"context"

	"github.com/VinodVen/growthai/internal/model"
	"gorm.io/gorm"
)

type ContactRepositoryInterface interface {
	Create(ctx context.Context, m *model.ContactMessage) error
	ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error)
}

type ContactRepository struct {
	DB *gorm.DB
}

func (r *ContactRepository) Create(ctx context.Context, m *model.ContactMessage) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *ContactRepository) ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	messages := []model.ContactMessage{}
	query := r.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&messages).Error
	return messages, err
}

var _ ContactRepositoryInterface = (*ContactRepository)(nil)
