package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/internal/repository"
	"github.com/VinodVen/growthai/pkg/billing"
	"github.com/VinodVen/growthai/pkg/subscription"
)

type BillingService struct {
	Businesses repository.BusinessRepositoryInterface
	Provider   billing.Provider
	BaseURL    string
}

// StartUpgrade returns the hosted checkout URL for business.
func (s *BillingService) StartUpgrade(ctx context.Context, business *model.Business) (string, error) {
	if s.Provider == nil {
		return "", errBillingNotConfigured
	}

	base := strings.TrimRight(s.BaseURL, "/")
	checkout, err := s.Provider.CreateCheckout(ctx, billing.CheckoutRequest{
		BusinessID:  business.ID,
		Email:       business.Email,
		Name:        business.BusinessName,
		CustomerRef: business.BillingCustomerRef,
		SuccessURL:  base + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   base + "/dashboard",
	})
	if err != nil {
		return "", billingError("start checkout", err)
	}

	if business.BillingCustomerRef == "" && checkout.CustomerRef != "" {
		if err := s.Businesses.UpdateBillingCustomerRef(ctx, business.ID, checkout.CustomerRef); err != nil {
			return "", err
		}
		business.BillingCustomerRef = checkout.CustomerRef
	}
	return checkout.URL, nil
}

// CompleteUpgrade flips business to pro once the provider confirms the
// checkout was paid by this business. A pro business is left untouched.
func (s *BillingService) CompleteUpgrade(ctx context.Context, business *model.Business, sessionID string) error {
	if business.IsPro() {
		return nil
	}
	if s.Provider == nil {
		return errBillingNotConfigured
	}
	if strings.TrimSpace(sessionID) == "" {
		return appErrors.Validation("Missing checkout session")
	}

	result, err := s.Provider.VerifyCheckout(ctx, sessionID)
	if err != nil {
		return billingError("verify checkout", err)
	}
	if result.ClientReference != strconv.FormatUint(uint64(business.ID), 10) {
		log.Printf("Checkout %s does not belong to business %d", sessionID, business.ID)
		return appErrors.New(appErrors.KindBilling, "checkout session does not belong to this account")
	}
	if !result.Paid {
		return appErrors.New(appErrors.KindBilling, "checkout has not been paid")
	}

	if business.BillingCustomerRef == "" && result.CustomerRef != "" {
		if err := s.Businesses.UpdateBillingCustomerRef(ctx, business.ID, result.CustomerRef); err != nil {
			return err
		}
		business.BillingCustomerRef = result.CustomerRef
	}
	return s.MarkUpgraded(ctx, business)
}

func (s *BillingService) MarkUpgraded(ctx context.Context, business *model.Business) error {
	if err := s.Businesses.UpdatePlan(ctx, business.ID, subscription.ProPlan); err != nil {
		return err
	}
	business.Plan = subscription.ProPlan
	log.Printf("Business %d upgraded to %s", business.ID, subscription.ProPlan)
	return nil
}

var errBillingNotConfigured = appErrors.New(appErrors.KindConfiguration, "Billing is not configured")

func billingError(op string, err error) error {
	if errors.Is(err, billing.ErrNotConfigured) {
		return errBillingNotConfigured
	}
	log.Printf("Billing %s failed: %v", op, err)
	return appErrors.Wrap(appErrors.KindBilling, op, err)
}
