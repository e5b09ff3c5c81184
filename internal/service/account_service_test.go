package service_test

import (
	"context"
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
	"github.com/VinodVen/growthai/pkg/subscription"
)

func newAccountService(t *testing.T) (*service.AccountService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return &service.AccountService{Businesses: &repository.BusinessRepository{DB: db}}, db
}

func validRegistration(email string) service.RegisterInput {
	return service.RegisterInput{
		BusinessName: "Cafe Luna",
		OwnerName:    "Luna",
		Email:        email,
		Password:     "secret1",
	}
}

func countBusinesses(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.Business{}).Count(&n).Error)
	return n
}

func TestRegister_ShortPasswordCreatesNothing(t *testing.T) {
	svc, db := newAccountService(t)

	in := validRegistration("owner@example.com")
	in.Password = "12345"
	_, err := svc.Register(context.Background(), in)

	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.KindValidation))
	assert.Equal(t, "Password must be at least 6 characters", appErrors.UserMessage(err))
	assert.Equal(t, int64(0), countBusinesses(t, db))
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newAccountService(t)

	tests := []struct {
		name   string
		mutate func(*service.RegisterInput)
	}{
		{"missing business name", func(in *service.RegisterInput) { in.BusinessName = "  " }},
		{"missing owner", func(in *service.RegisterInput) { in.OwnerName = "" }},
		{"bad email", func(in *service.RegisterInput) { in.Email = "not-an-email" }},
		{"display name email", func(in *service.RegisterInput) { in.Email = "Luna <luna@example.com>" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration("owner@example.com")
			tt.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			assert.True(t, appErrors.Is(err, appErrors.KindValidation), "got %v", err)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, db := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration("owner@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRegistration("  OWNER@example.com "))
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.KindConflict))
	assert.Equal(t, "Email already registered", appErrors.UserMessage(err))
	assert.Equal(t, int64(1), countBusinesses(t, db))
}

func TestRegister_Defaults(t *testing.T) {
	svc, _ := newAccountService(t)

	b, err := svc.Register(context.Background(), validRegistration("Owner@Example.com"))
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, "owner@example.com", b.Email)
	assert.Equal(t, subscription.FreePlan, b.Plan)
	assert.Equal(t, model.RoleOwner, b.Role)
	assert.Equal(t, "cafe-luna", b.Slug)
	assert.NotEqual(t, "secret1", b.Password)
	assert.True(t, service.CheckPassword(b.Password, "secret1"))
}

func TestRegister_SlugCollisions(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	var slugs []string
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		b, err := svc.Register(ctx, validRegistration(email))
		require.NoError(t, err)
		slugs = append(slugs, b.Slug)
	}
	assert.Equal(t, []string{"cafe-luna", "cafe-luna-2", "cafe-luna-3"}, slugs)
}

func TestRegister_SendsWelcomeEmail(t *testing.T) {
	svc, _ := newAccountService(t)
	sender := &testutil.FakeSender{}
	svc.Mailer = sender
	sent := sender.WelcomeSent()

	_, err := svc.Register(context.Background(), validRegistration("owner@example.com"))
	require.NoError(t, err)

	select {
	case to := <-sent:
		assert.Equal(t, "owner@example.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("welcome email was not sent")
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegistration("owner@example.com"))
	require.NoError(t, err)

	b, err := svc.Authenticate(ctx, "OWNER@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, b.ID)

	_, wrongPassword := svc.Authenticate(ctx, "owner@example.com", "wrong-password")
	_, unknownEmail := svc.Authenticate(ctx, "nobody@example.com", "secret1")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, appErrors.UserMessage(wrongPassword), appErrors.UserMessage(unknownEmail))
	assert.Equal(t, "Invalid credentials", appErrors.UserMessage(unknownEmail))
}
