package service

import (
	"context"
	"strings"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/internal/repository"
)

type ContactService struct {
	Messages repository.ContactRepositoryInterface
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	m := &model.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   NormalizeEmail(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
	if m.Name == "" || m.Message == "" {
		return nil, appErrors.Validation("Name and message are required")
	}
	if !ValidEmail(m.Email) {
		return nil, appErrors.Validation("A valid email is required")
	}

	if err := s.Messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
