package business

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Premium upgrade pricing, in the smallest currency unit (INR paise).
const premiumUpgradeAmount = 49900

// PremiumUpgrade carries the client secret the owner's app needs to complete
// the Stripe payment.
type PremiumUpgrade struct {
	BusinessID      string `json:"businessId"`
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// StartPremiumUpgrade creates a Stripe PaymentIntent for upgrading a listing
// to premium. The premium flag is only set once the payment is confirmed.
func (s *DefaultBusinessService) StartPremiumUpgrade(ctx context.Context, ownerID, businessID string) (*PremiumUpgrade, error) {
	b, err := s.Repo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, fmt.Errorf("business %s is not owned by %s", businessID, ownerID)
	}
	if b.Premium {
		return nil, fmt.Errorf("business %s is already premium", businessID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(premiumUpgradeAmount),
		Currency: stripe.String(string(stripe.CurrencyINR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("businessId", businessID)
	params.AddMetadata("ownerId", ownerID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.Logger.Info("premium upgrade initiated",
		zap.String("businessId", businessID), zap.String("paymentIntent", pi.ID))

	return &PremiumUpgrade{
		BusinessID:      businessID,
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Amount:          pi.Amount,
		Currency:        string(pi.Currency),
	}, nil
}

// ConfirmPremiumUpgrade verifies the payment succeeded and flips the premium flag.
func (s *DefaultBusinessService) ConfirmPremiumUpgrade(ctx context.Context, ownerID, businessID, paymentIntentID string) error {
	b, err := s.Repo.GetByID(businessID)
	if err != nil {
		return err
	}
	if b.OwnerID != ownerID {
		return fmt.Errorf("business %s is not owned by %s", businessID, ownerID)
	}

	pi, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch payment intent %s: %w", paymentIntentID, err)
	}
	if pi.Metadata["businessId"] != businessID {
		return fmt.Errorf("payment intent %s does not belong to business %s", paymentIntentID, businessID)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("payment intent %s has status %s", paymentIntentID, pi.Status)
	}

	if err := s.Repo.SetFlag(businessID, "premium", true); err != nil {
		return err
	}
	s.Logger.Info("premium upgrade confirmed", zap.String("businessId", businessID))
	return nil
}
