package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/internal/repository"
	"github.com/VinodVen/growthai/internal/service"
	"github.com/VinodVen/growthai/pkg/config"
)

// SeedAdmin makes sure the configured admin account exists. An existing
// business with that email is promoted, its password is left alone.
func SeedAdmin(ctx context.Context, businesses repository.BusinessRepositoryInterface, accounts *service.AccountService, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	existing, err := businesses.GetByEmail(ctx, service.NormalizeEmail(cfg.Email))
	if err != nil {
		return err
	}
	if existing == nil {
		existing, err = accounts.Register(ctx, service.RegisterInput{
			BusinessName: cfg.BusinessName,
			OwnerName:    "Administrator",
			Email:        cfg.Email,
			Password:     cfg.Password,
		})
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
	}

	if existing.IsAdmin() {
		return nil
	}
	if err := businesses.UpdateRole(ctx, existing.ID, model.RoleAdmin); err != nil {
		return err
	}
	log.Printf("Admin seeded for %s", existing.Email)
	return nil
}
