package repository

import (
	"context"
	"errors"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/pkg/subscription"
	"gorm.io/gorm"
)

type BusinessRepositoryInterface interface {
	Create(ctx context.Context, b *model.Business) error
	GetByID(ctx context.Context, id uint) (*model.Business, error)
	GetByEmail(ctx context.Context, email string) (*model.Business, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UpdatePlan(ctx context.Context, id uint, plan subscription.PlanType) error
	UpdateRole(ctx context.Context, id uint, role model.Role) error
	UpdateBillingCustomerRef(ctx context.Context, id uint, ref string) error
	List(ctx context.Context) ([]model.Business, error)
}

type BusinessRepository struct {
	DB *gorm.DB
}

// ErrEmailTaken is returned when the unique email index rejects an insert.
var ErrEmailTaken = appErrors.New(appErrors.KindConflict, "Email already registered")

func (r *BusinessRepository) Create(ctx context.Context, b *model.Business) error {
	if b.Plan == "" {
		b.Plan = subscription.FreePlan
	}
	if b.Role == "" {
		b.Role = model.RoleOwner
	}
	if err := r.DB.WithContext(ctx).Create(b).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetByID returns a NotFound error when no row matches.
func (r *BusinessRepository) GetByID(ctx context.Context, id uint) (*model.Business, error) {
	var b model.Business
	if err := r.DB.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewBusinessNotFound(id)
		}
		return nil, err
	}
	return &b, nil
}

// GetByEmail returns nil, nil when no business uses email.
func (r *BusinessRepository) GetByEmail(ctx context.Context, email string) (*model.Business, error) {
	var b model.Business
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Business{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *BusinessRepository) UpdatePlan(ctx context.Context, id uint, plan subscription.PlanType) error {
	return r.updateColumn(ctx, id, "plan", plan)
}

func (r *BusinessRepository) UpdateRole(ctx context.Context, id uint, role model.Role) error {
	return r.updateColumn(ctx, id, "role", role)
}

func (r *BusinessRepository) UpdateBillingCustomerRef(ctx context.Context, id uint, ref string) error {
	return r.updateColumn(ctx, id, "billing_customer_ref", ref)
}

func (r *BusinessRepository) List(ctx context.Context) ([]model.Business, error) {
	businesses := []model.Business{}
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepository) updateColumn(ctx context.Context, id uint, column string, value interface{}) error {
	result := r.DB.WithContext(ctx).Model(&model.Business{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.NewBusinessNotFound(id)
	}
	return nil
}

var _ BusinessRepositoryInterface = (*BusinessRepository)(nil)
