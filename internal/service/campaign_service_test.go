package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/internal/repository"
	"github.com/VinodVen/growthai/internal/service"
	"github.com/VinodVen/growthai/internal/testutil"
)

type campaignFixture struct {
	db        *gorm.DB
	svc       *service.CampaignService
	completer *testutil.FakeCompleter
	sender    *testutil.FakeSender
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &campaignFixture{
		db:        db,
		completer: &testutil.FakeCompleter{Reply: "**Happy weekend** Jane! ###"},
		sender:    &testutil.FakeSender{},
	}
	f.svc = &service.CampaignService{
		Campaigns: &repository.CampaignRepository{DB: db},
		Customers: &repository.CustomerRepository{DB: db},
		Completer: f.completer,
		Sender:    f.sender,
		AITimeout: time.Second,
	}
	return f
}

func (f *campaignFixture) business(t *testing.T, name string) *model.Business {
	t.Helper()
	b := &model.Business{
		BusinessName: name,
		OwnerName:    "Owner",
		Email:        strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@example.com",
		Password:     "hash",
		Slug:         strings.ToLower(strings.ReplaceAll(name, " ", "-")),
	}
	require.NoError(t, (&repository.BusinessRepository{DB: f.db}).Create(context.Background(), b))
	return b
}

func (f *campaignFixture) count(t *testing.T, table interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(table).Count(&n).Error)
	return n
}

func generateInput(name string) service.GenerateInput {
	return service.GenerateInput{
		FirstName:     name,
		CustomerEmail: strings.ToLower(name) + "@example.com",
		CampaignType:  "weekend",
	}
}

func TestGenerate_StoresSanitizedCampaign(t *testing.T) {
	f := newCampaignFixture(t)
	b := f.business(t, "Cafe Luna")

	in := generateInput("Jane")
	in.LastName = "Doe"
	in.DateOfBirth = "1990-04-12"
	in.CampaignType = "birthday"

	campaign, err := f.svc.Generate(context.Background(), b, in)
	require.NoError(t, err)

	assert.Equal(t, "Happy weekend Jane!", campaign.Message)
	assert.Equal(t, model.CampaignBirthday, campaign.CampaignType)
	assert.Equal(t, "Jane Doe", campaign.CustomerName)
	assert.Equal(t, b.ID, campaign.BusinessID)
	assert.NotZero(t, campaign.CustomerID)

	require.Len(t, f.completer.Requests, 1)
	req := f.completer.Requests[0]
	assert.Equal(t, service.SystemPrompt, req.System)
	assert.Contains(t, req.Prompt, "30%")
	assert.Contains(t, req.Prompt, "Cafe Luna")

	var customer model.Customer
	require.NoError(t, f.db.First(&customer, campaign.CustomerID).Error)
	assert.Equal(t, b.ID, customer.BusinessID)
	require.NotNil(t, customer.DateOfBirth)
	assert.Equal(t, "1990-04-12", time.Time(*customer.DateOfBirth).Format("2006-01-02"))
}

func TestGenerate_AIFailurePersistsNothing(t *testing.T) {
	f := newCampaignFixture(t)
	b := f.business(t, "Cafe Luna")
	f.completer.Err = errors.New("rate limit exceeded")

	_, err := f.svc.Generate(context.Background(), b, generateInput("Jane"))
	require.Error(t, err)

	assert.True(t, appErrors.Is(err, appErrors.KindAIService))
	assert.True(t, strings.HasPrefix(appErrors.UserMessage(err), "AI Error:"))
	assert.Contains(t, appErrors.UserMessage(err), "rate limit exceeded")
	assert.Equal(t, int64(0), f.count(t, &model.Campaign{}))
	assert.Equal(t, int64(0), f.count(t, &model.Customer{}))
}

func TestGenerate_EmptyCompletionIsAnAIError(t *testing.T) {
	f := newCampaignFixture(t)
	b := f.business(t, "Cafe Luna")
	f.completer.Reply = " ### ** "

	_, err := f.svc.Generate(context.Background(), b, generateInput("Jane"))
	assert.True(t, appErrors.Is(err, appErrors.KindAIService))
	assert.Equal(t, int64(0), f.count(t, &model.Campaign{}))
}

func TestGenerate_MissingCompleter(t *testing.T) {
	f := newCampaignFixture(t)
	b := f.business(t, "Cafe Luna")
	f.svc.Completer = nil

	_, err := f.svc.Generate(context.Background(), b, generateInput("Jane"))
	assert.True(t, strings.HasPrefix(appErrors.UserMessage(err), "AI Error:"))
}

func TestGenerate_Validation(t *testing.T) {
	f := newCampaignFixture(t)
	b := f.business(t, "Cafe Luna")

	tests := []struct {
		name string
		in   service.GenerateInput
	}{
		{"missing first name", service.GenerateInput{CustomerEmail: "jane@example.com"}},
		{"bad email", service.GenerateInput{FirstName: "Jane", CustomerEmail: "jane"}},
		{"bad date of birth", service.GenerateInput{FirstName: "Jane", CustomerEmail: "jane@example.com", DateOfBirth: "12/04/1990"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Generate(context.Background(), b, tt.in)
			assert.True(t, appErrors.Is(err, appErrors.KindValidation), "got %v", err)
		})
	}
	assert.Empty(t, f.completer.Requests)
}

func TestDashboard_RecentFiveAndTotal(t *testing.T) {
	f := newCampaignFixture(t)
	b := f.business(t, "Cafe Luna")
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		f.completer.Reply = fmt.Sprintf("message %d", i)
		_, err := f.svc.Generate(ctx, b, generateInput(fmt.Sprintf("Customer%d", i)))
		require.NoError(t, err)
	}

	data, err := f.svc.Dashboard(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.Total)
	assert.Equal(t, int64(7), data.Customers)
	require.Len(t, data.RecentCustomers, service.DashboardLimit)
	assert.Equal(t, "Customer6", data.RecentCustomers[0].FirstName)
	require.Len(t, data.Campaigns, service.DashboardLimit)
	assert.Equal(t, "message 6", data.Campaigns[0].Message)
	assert.Equal(t, "message 2", data.Campaigns[4].Message)
}

func TestCampaigns_AreScopedToBusiness(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()
	luna := f.business(t, "Cafe Luna")
	sol := f.business(t, "Cafe Sol")

	mine, err := f.svc.Generate(ctx, luna, generateInput("Jane"))
	require.NoError(t, err)

	data, err := f.svc.Dashboard(ctx, sol)
	require.NoError(t, err)
	assert.Empty(t, data.Campaigns)
	assert.Equal(t, int64(0), data.Total)

	_, err = f.svc.SendPromotion(ctx, sol, mine.ID, "")
	assert.True(t, appErrors.Is(err, appErrors.KindNotFound))
	assert.Empty(t, f.sender.Sent())
}

func TestSendPromotion(t *testing.T) {
	f := newCampaignFixture(t)
	b := f.business(t, "Cafe Luna")
	ctx := context.Background()

	campaign, err := f.svc.Generate(ctx, b, generateInput("Jane"))
	require.NoError(t, err)

	_, err = f.svc.SendPromotion(ctx, b, campaign.ID, "")
	require.NoError(t, err)
	_, err = f.svc.SendPromotion(ctx, b, campaign.ID, "friend@example.com")
	require.NoError(t, err)

	sent := f.sender.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "jane@example.com", sent[0].To)
	assert.Equal(t, "friend@example.com", sent[1].To)
	assert.Equal(t, "Special Offer from Cafe Luna", sent[0].Subject)
	assert.Equal(t, campaign.Message, sent[0].Text)
}

func TestSendPromotion_Errors(t *testing.T) {
	f := newCampaignFixture(t)
	b := f.business(t, "Cafe Luna")
	ctx := context.Background()

	campaign, err := f.svc.Generate(ctx, b, generateInput("Jane"))
	require.NoError(t, err)

	_, err = f.svc.SendPromotion(ctx, b, campaign.ID, "not-an-email")
	assert.True(t, appErrors.Is(err, appErrors.KindValidation))

	f.sender.Err = errors.New("535 authentication failed")
	_, err = f.svc.SendPromotion(ctx, b, campaign.ID, "")
	require.Error(t, err)
	assert.Equal(t, "Email Error: 535 authentication failed", appErrors.UserMessage(err))

	f.svc.Sender = nil
	_, err = f.svc.SendPromotion(ctx, b, campaign.ID, "")
	assert.True(t, strings.HasPrefix(appErrors.UserMessage(err), "Email Error:"))
}
