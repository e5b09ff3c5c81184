package billing

import (
	"context"
	"errors"
)

var ErrNotConfigured = errors.New("billing provider is not configured")

type CheckoutRequest struct {
	BusinessID  uint
	Email       string
	Name        string
	CustomerRef string
	SuccessURL  string
	CancelURL   string
}

type CheckoutSession struct {
	ID          string
	URL         string
	CustomerRef string
}

// CheckoutResult is the provider's view of a finished checkout.
type CheckoutResult struct {
	ClientReference string
	CustomerRef     string
	Paid            bool
}

type Provider interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	VerifyCheckout(ctx context.Context, sessionID string) (*CheckoutResult, error)
}
