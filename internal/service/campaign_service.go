package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/internal/repository"
	"github.com/VinodVen/growthai/pkg/ai"
	"github.com/VinodVen/growthai/pkg/email"
	"gorm.io/datatypes"
)

const (
	DashboardLimit    = 5
	defaultAITimeout  = 30 * time.Second
	dateOfBirthLayout = "2006-01-02"
)

type CampaignService struct {
	Campaigns repository.CampaignRepositoryInterface
	Customers repository.CustomerRepositoryInterface
	Completer ai.Completer
	Sender    email.Sender
	AITimeout time.Duration
}

type GenerateInput struct {
	FirstName     string
	LastName      string
	CustomerEmail string
	Phone         string
	DateOfBirth   string
	CampaignType  string
}

type DashboardData struct {
	Campaigns []model.Campaign
	Total     int64
	Customers int64
	// RecentCustomers holds the newest customers, at most DashboardLimit.
	RecentCustomers []model.Customer
}

// Generate asks the AI provider for a promotion and stores the customer and
// the campaign together. Nothing is stored when the provider fails.
func (s *CampaignService) Generate(ctx context.Context, business *model.Business, in GenerateInput) (*model.Campaign, error) {
	customer, err := buildCustomer(in)
	if err != nil {
		return nil, err
	}
	campaignType := model.ParseCampaignType(strings.TrimSpace(in.CampaignType))

	message, err := s.complete(ctx, BuildPrompt(campaignType, customer.FirstName, business.BusinessName))
	if err != nil {
		log.Printf("AI completion failed for business %d: %v", business.ID, err)
		return nil, appErrors.Wrap(appErrors.KindAIService, "generate promotion", err)
	}

	campaign := &model.Campaign{
		BusinessID:    business.ID,
		CustomerName:  customer.FullName(),
		CustomerEmail: customer.Email,
		CampaignType:  campaignType,
		Message:       message,
	}
	if err := s.Campaigns.CreateWithCustomer(ctx, customer, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *CampaignService) Dashboard(ctx context.Context, business *model.Business) (*DashboardData, error) {
	campaigns, err := s.Campaigns.ListRecent(ctx, business.ID, DashboardLimit)
	if err != nil {
		return nil, err
	}
	total, err := s.Campaigns.Count(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	data := &DashboardData{Campaigns: campaigns, Total: total}
	if s.Customers != nil {
		if data.Customers, err = s.Customers.Count(ctx, business.ID); err != nil {
			return nil, err
		}
		if data.RecentCustomers, err = s.Customers.ListByBusiness(ctx, business.ID, DashboardLimit); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// SendPromotion emails a stored campaign. An empty recipient means the
// campaign's own customer.
func (s *CampaignService) SendPromotion(ctx context.Context, business *model.Business, campaignID uint, recipient string) (*model.Campaign, error) {
	campaign, err := s.Campaigns.GetByID(ctx, business.ID, campaignID)
	if err != nil {
		return nil, err
	}

	to := strings.TrimSpace(recipient)
	if to == "" {
		to = campaign.CustomerEmail
	}
	if !ValidEmail(to) {
		return nil, appErrors.Validation("A valid recipient email is required")
	}
	if s.Sender == nil {
		return nil, appErrors.Wrap(appErrors.KindEmail, "send promotion", email.ErrNotConfigured)
	}

	err = s.Sender.Send(ctx, email.Message{
		To:      to,
		Subject: "Special Offer from " + business.BusinessName,
		Text:    campaign.Message,
	})
	if err != nil {
		log.Printf("Sending campaign %d to %s failed: %v", campaign.ID, to, err)
		return nil, appErrors.Wrap(appErrors.KindEmail, "send promotion", err)
	}
	return campaign, nil
}

func (s *CampaignService) complete(ctx context.Context, prompt string) (string, error) {
	if s.Completer == nil {
		return "", ai.ErrNotConfigured
	}

	timeout := s.AITimeout
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := s.Completer.Complete(ctx, ai.CompletionRequest{
		System:    SystemPrompt,
		Prompt:    prompt,
		MaxTokens: promotionMaxTokens,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", errors.New("request timed out")
		}
		return "", err
	}

	message := Sanitize(raw)
	if message == "" {
		return "", ai.ErrEmptyCompletion
	}
	return message, nil
}

func buildCustomer(in GenerateInput) (*model.Customer, error) {
	customer := &model.Customer{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     NormalizeEmail(in.CustomerEmail),
		Phone:     strings.TrimSpace(in.Phone),
	}

	if customer.FirstName == "" {
		return nil, appErrors.Validation("Customer first name is required")
	}
	if !ValidEmail(customer.Email) {
		return nil, appErrors.Validation("A valid customer email is required")
	}

	if dob := strings.TrimSpace(in.DateOfBirth); dob != "" {
		t, err := time.Parse(dateOfBirthLayout, dob)
		if err != nil {
			return nil, appErrors.Validation("Date of birth must be YYYY-MM-DD")
		}
		d := datatypes.Date(t)
		customer.DateOfBirth = &d
	}
	return customer, nil
}
