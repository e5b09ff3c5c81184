package main

import (
	"context"
	"log"

	"github.com/VinodVen/growthai/internal/middleware"
	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/internal/repository"
	"github.com/VinodVen/growthai/internal/router"
	"github.com/VinodVen/growthai/internal/service"
	"github.com/VinodVen/growthai/pkg/ai"
	"github.com/VinodVen/growthai/pkg/billing"
	"github.com/VinodVen/growthai/pkg/config"
	"github.com/VinodVen/growthai/pkg/cron"
	"github.com/VinodVen/growthai/pkg/database"
	"github.com/VinodVen/growthai/pkg/email"
	"github.com/VinodVen/growthai/pkg/seed"
	"github.com/VinodVen/growthai/pkg/utils/jwt"
)

func main() {
	cfg := config.Load()

	db := database.InitDB(cfg.Database.URL)
	if err := database.MigrateDatabase(db, model.All()...); err != nil {
		log.Printf("Migration warning: %v", err)
	}

	emailService, err := email.NewEmailService(email.Config{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		Timeout:  cfg.Email.Timeout,
	})
	if err != nil {
		log.Fatal("Could not initialize email service:", err)
	}
	if !emailService.Configured() {
		log.Println("EMAIL_USER/EMAIL_PASS not set, sending email will fail")
	}

	if cfg.AI.APIKey == "" {
		log.Println("OPENAI_API_KEY not set, campaign generation will fail")
	}
	completer := ai.NewOpenAIClient(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL)

	var provider billing.Provider
	if stripeProvider := billing.NewStripeProvider(cfg.Stripe.SecretKey, cfg.Stripe.PriceID); stripeProvider != nil {
		provider = stripeProvider
	} else {
		log.Println("STRIPE_SECRET_KEY/STRIPE_PRICE_ID not set, upgrades are disabled")
	}

	businesses := &repository.BusinessRepository{DB: db}
	campaigns := &repository.CampaignRepository{DB: db}
	contacts := &repository.ContactRepository{DB: db}

	accounts := &service.AccountService{Businesses: businesses}
	if emailService.Configured() {
		accounts.Mailer = emailService
	}

	if err := seed.SeedAdmin(context.Background(), businesses, accounts, cfg.Admin); err != nil {
		log.Printf("Could not seed admin: %v", err)
	}

	if cfg.Digest.Schedule != "" {
		digest := &cron.CampaignDigest{
			Businesses: businesses,
			Campaigns:  campaigns,
			Mailer:     emailService,
		}
		if _, err := cron.InitCampaignDigestCron(cfg.Digest.Schedule, digest); err != nil {
			log.Printf("Could not initialize campaign digest cron: %v", err)
		}
	}

	app := router.New(router.Dependencies{
		Session: &middleware.Session{
			Tokens:   jwt.NewManager(cfg.Session.Secret, cfg.Session.TTL),
			Accounts: accounts,
			Secure:   cfg.Session.CookieSecure,
		},
		Accounts: accounts,
		Campaigns: &service.CampaignService{
			Campaigns: campaigns,
			Customers: &repository.CustomerRepository{DB: db},
			Completer: completer,
			Sender:    emailService,
			AITimeout: cfg.AI.Timeout,
		},
		Billing: &service.BillingService{
			Businesses: businesses,
			Provider:   provider,
			BaseURL:    cfg.Server.BaseURL,
		},
		Contacts:  &service.ContactService{Messages: contacts},
		Admin:     &service.AdminService{Businesses: businesses, Campaigns: campaigns, Messages: contacts},
		AccessLog: true,
	})

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
