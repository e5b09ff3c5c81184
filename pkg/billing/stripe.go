package billing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/customer"
)

type StripeProvider struct {
	priceID string
}

// NewStripeProvider sets the package-level stripe key. It returns nil when
// either the key or the price is missing.
func NewStripeProvider(secretKey, priceID string) *StripeProvider {
	if secretKey == "" || priceID == "" {
		return nil
	}
	stripe.Key = secretKey
	return &StripeProvider{priceID: priceID}
}

func (p *StripeProvider) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if p == nil {
		return nil, ErrNotConfigured
	}

	customerRef := req.CustomerRef
	if customerRef == "" {
		customerParams := &stripe.CustomerParams{
			Email: stripe.String(req.Email),
			Name:  stripe.String(req.Name),
		}
		customerParams.Context = ctx
		customerParams.AddMetadata("business_id", strconv.FormatUint(uint64(req.BusinessID), 10))

		stripeCustomer, err := customer.New(customerParams)
		if err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
		customerRef = stripeCustomer.ID
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:          stripe.String(customerRef),
		ClientReferenceID: stripe.String(strconv.FormatUint(uint64(req.BusinessID), 10)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.priceID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &CheckoutSession{
		ID:          s.ID,
		URL:         s.URL,
		CustomerRef: customerRef,
	}, nil
}

func (p *StripeProvider) VerifyCheckout(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	if p == nil {
		return nil, ErrNotConfigured
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}

	result := &CheckoutResult{
		ClientReference: s.ClientReferenceID,
		Paid: s.Status == stripe.CheckoutSessionStatusComplete &&
			s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}
	if s.Customer != nil {
		result.CustomerRef = s.Customer.ID
	}
	return result, nil
}

var _ Provider = (*StripeProvider)(nil)
