package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/internal/repository"
	"github.com/VinodVen/growthai/pkg/subscription"
	"github.com/gosimple/slug"
)

const welcomeEmailTimeout = 30 * time.Second

type WelcomeMailer interface {
	SendWelcomeEmail(ctx context.Context, to, ownerName, businessName string) error
}

type AccountService struct {
	Businesses repository.BusinessRepositoryInterface
	// Mailer is optional. Welcome emails are sent in the background.
	Mailer WelcomeMailer
}

type RegisterInput struct {
	BusinessName string
	OwnerName    string
	Email        string
	Password     string
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*model.Business, error) {
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.OwnerName = strings.TrimSpace(in.OwnerName)
	in.Email = NormalizeEmail(in.Email)

	switch {
	case in.BusinessName == "":
		return nil, appErrors.Validation("Business name is required")
	case in.OwnerName == "":
		return nil, appErrors.Validation("Owner name is required")
	case !ValidEmail(in.Email):
		return nil, appErrors.Validation("A valid email is required")
	case len(in.Password) < MinPasswordLength:
		return nil, appErrors.Validation(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}

	existing, err := s.Businesses.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrEmailTaken
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.KindInternal, "hash password", err)
	}

	businessSlug, err := s.uniqueSlug(ctx, in.BusinessName)
	if err != nil {
		return nil, err
	}

	b := &model.Business{
		BusinessName: in.BusinessName,
		OwnerName:    in.OwnerName,
		Email:        in.Email,
		Password:     hashed,
		Slug:         businessSlug,
		Plan:         subscription.FreePlan,
		Role:         model.RoleOwner,
	}
	if err := s.Businesses.Create(ctx, b); err != nil {
		return nil, err
	}

	log.Printf("Registered business %d (%s)", b.ID, b.Slug)
	s.sendWelcome(b)
	return b, nil
}

// Authenticate returns ErrInvalidCredentials for an unknown email and for a
// wrong password alike.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*model.Business, error) {
	b, err := s.Businesses.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if b == nil {
		CheckPassword(string(dummyHash), password)
		return nil, appErrors.ErrInvalidCredentials
	}
	if !CheckPassword(b.Password, password) {
		return nil, appErrors.ErrInvalidCredentials
	}
	return b, nil
}

func (s *AccountService) GetBusiness(ctx context.Context, id uint) (*model.Business, error) {
	return s.Businesses.GetByID(ctx, id)
}

// uniqueSlug appends -2, -3, ... until the slug is free.
func (s *AccountService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "business"
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := s.Businesses.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *AccountService) sendWelcome(b *model.Business) {
	if s.Mailer == nil {
		return
	}
	to, owner, name := b.Email, b.OwnerName, b.BusinessName
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), welcomeEmailTimeout)
		defer cancel()
		if err := s.Mailer.SendWelcomeEmail(ctx, to, owner, name); err != nil {
			log.Printf("Could not send welcome email to %s: %v", to, err)
		}
	}()
}
