package service

import (
	"context"
	"time"

	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/internal/repository"
)

const adminMessageLimit = 50

type AdminService struct {
	Businesses repository.BusinessRepositoryInterface
	Campaigns  repository.CampaignRepositoryInterface
	Messages   repository.ContactRepositoryInterface
}

type BusinessSummary struct {
	Business      model.Business
	CampaignCount int64
}

type AdminOverview struct {
	Businesses []BusinessSummary
	Messages   []model.ContactMessage
}

func (s *AdminService) Overview(ctx context.Context) (*AdminOverview, error) {
	businesses, err := s.Businesses.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.Campaigns.CountByBusiness(ctx, time.Time{})
	if err != nil {
		return nil, err
	}
	messages, err := s.Messages.ListRecent(ctx, adminMessageLimit)
	if err != nil {
		return nil, err
	}

	overview := &AdminOverview{
		Businesses: make([]BusinessSummary, 0, len(businesses)),
		Messages:   messages,
	}
	for _, b := range businesses {
		overview.Businesses = append(overview.Businesses, BusinessSummary{
			Business:      b,
			CampaignCount: counts[b.ID],
		})
	}
	return overview, nil
}
