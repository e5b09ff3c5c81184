package repository

import (
	"context"
	"errors"
	"time"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/model"
	"gorm.io/gorm"
)

type CampaignRepositoryInterface interface {
	CreateWithCustomer(ctx context.Context, customer *model.Customer, campaign *model.Campaign) error
	ListRecent(ctx context.Context, businessID uint, limit int) ([]model.Campaign, error)
	Count(ctx context.Context, businessID uint) (int64, error)
	GetByID(ctx context.Context, businessID, id uint) (*model.Campaign, error)
	CountByBusiness(ctx context.Context, since time.Time) (map[uint]int64, error)
}

type CampaignRepository struct {
	DB *gorm.DB
}

// CreateWithCustomer stores the customer and its campaign in one transaction.
// Both rows are stamped with the campaign's business id.
func (r *CampaignRepository) CreateWithCustomer(ctx context.Context, customer *model.Customer, campaign *model.Campaign) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer.BusinessID = campaign.BusinessID
		if err := tx.Create(customer).Error; err != nil {
			return err
		}
		campaign.CustomerID = customer.ID
		return tx.Create(campaign).Error
	})
}

func (r *CampaignRepository) ListRecent(ctx context.Context, businessID uint, limit int) ([]model.Campaign, error) {
	campaigns := []model.Campaign{}
	err := r.DB.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepository) Count(ctx context.Context, businessID uint) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.Campaign{}).Where("business_id = ?", businessID).Count(&total).Error
	return total, err
}

func (r *CampaignRepository) GetByID(ctx context.Context, businessID, id uint) (*model.Campaign, error) {
	var c model.Campaign
	err := r.DB.WithContext(ctx).Where("business_id = ? AND id = ?", businessID, id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

// CountByBusiness counts campaigns per business created at or after since.
// A zero since counts everything.
func (r *CampaignRepository) CountByBusiness(ctx context.Context, since time.Time) (map[uint]int64, error) {
	var rows []struct {
		BusinessID uint
		Total      int64
	}

	query := r.DB.WithContext(ctx).Model(&model.Campaign{}).
		Select("business_id, COUNT(*) AS total")
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	if err := query.Group("business_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.BusinessID] = row.Total
	}
	return counts, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
