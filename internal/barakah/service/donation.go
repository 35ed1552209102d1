package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/payments"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/pkg/idx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

var (
	ErrDonationInvalid  = errors.New("service: invalid donation")
	ErrCampaignInactive = errors.New("service: campaign not accepting donations")
)

// MinDonationAmount is the smallest charge the payment collaborator will
// process, in MYR cents (RM 2.00).
const MinDonationAmount int64 = 200

// DonationService starts hosted checkouts and records completed payments.
// A donation row is created pending before the donor is redirected; the
// collaborator's webhook completes it.
type DonationService struct {
	Store    store.Store
	Checkout *payments.Client
}

// StartZakatCheckout opens a checkout for a direct Zakat payment.
func (s *DonationService) StartZakatCheckout(ctx context.Context, userID string, amount int64) (payments.CheckoutSession, error) {
	return s.startCheckout(ctx, userID, nil, domain.DonationKindZakat, amount, "Zakat payment")
}

// StartCampaignCheckout opens a checkout for a contribution to one campaign.
func (s *DonationService) StartCampaignCheckout(ctx context.Context, userID, campaignID string, amount int64) (payments.CheckoutSession, error) {
	campaign, err := s.Store.Campaigns().GetCampaignByID(ctx, campaignID)
	if err != nil {
		return payments.CheckoutSession{}, err
	}
	if !campaign.Active {
		return payments.CheckoutSession{}, ErrCampaignInactive
	}
	return s.startCheckout(ctx, userID, &campaign.ID, domain.DonationKindCampaign, amount,
		"Donation: "+campaign.Title)
}

func (s *DonationService) startCheckout(ctx context.Context, userID string, campaignID *string, kind string, amount int64, description string) (payments.CheckoutSession, error) {
	if amount < MinDonationAmount {
		return payments.CheckoutSession{}, fmt.Errorf("%w: amount below minimum", ErrDonationInvalid)
	}

	donationID := idx.New().String()
	session, err := s.Checkout.CreateCheckout(ctx, payments.CheckoutRequest{
		Amount:      amount,
		Currency:    "myr",
		Description: description,
		Metadata:    map[string]string{"donation_id": donationID},
	})
	if err != nil {
		return payments.CheckoutSession{}, fmt.Errorf("opening checkout: %w", err)
	}

	now := time.Now().UTC()
	donation := domain.Donation{
		ID:          donationID,
		UserID:      userID,
		CampaignID:  campaignID,
		Kind:        kind,
		Amount:      amount,
		Currency:    "myr",
		CheckoutRef: session.ID,
		Status:      domain.DonationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Donations().CreateDonation(ctx, donation); err != nil {
		return payments.CheckoutSession{}, fmt.Errorf("recording pending donation: %w", err)
	}
	return session, nil
}

// RecordCompleted finalizes the donation named in a verified completion
// event. Redeliveries are absorbed: if the payment reference was already
// recorded, the call is a no-op. Completion and the campaign counter update
// happen in one transaction.
func (s *DonationService) RecordCompleted(ctx context.Context, completed payments.CompletedCheckout) error {
	log := slogx.FromContext(ctx)

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Donations().GetDonationByPaymentRef(ctx, completed.PaymentIntent); err == nil {
			log.Info("donation already completed, skipping redelivery",
				slog.String("payment_ref", completed.PaymentIntent))
			return nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking payment ref: %w", err)
		}

		donation, err := s.lookupDonation(ctx, tx, completed)
		if err != nil {
			return err
		}
		if donation.Status == domain.DonationCompleted {
			return nil
		}

		if err := tx.Donations().MarkCompleted(ctx, donation.ID, completed.PaymentIntent, time.Now().UTC()); err != nil {
			return fmt.Errorf("completing donation: %w", err)
		}
		if donation.Kind == domain.DonationKindCampaign && donation.CampaignID != nil {
			if err := tx.Campaigns().AddCollected(ctx, *donation.CampaignID, donation.Amount); err != nil {
				return fmt.Errorf("crediting campaign: %w", err)
			}
		}

		log.Info("donation completed",
			slog.String("donation_id", donation.ID),
			slog.String("kind", donation.Kind),
			slog.Int64("amount", donation.Amount))
		return nil
	})
}

// lookupDonation resolves the pending row, preferring the donation_id we
// stamped into checkout metadata and falling back to the checkout ref.
func (s *DonationService) lookupDonation(ctx context.Context, tx store.Tx, completed payments.CompletedCheckout) (domain.Donation, error) {
	if id := completed.Metadata["donation_id"]; id != "" {
		donation, err := tx.Donations().GetDonationByID(ctx, id)
		if err == nil {
			return donation, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.Donation{}, fmt.Errorf("loading donation: %w", err)
		}
	}
	donation, err := tx.Donations().GetDonationByCheckoutRef(ctx, completed.ID)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("loading donation by checkout ref: %w", err)
	}
	return donation, nil
}

// History lists the caller's donations, newest first.
func (s *DonationService) History(ctx context.Context, userID string) ([]domain.Donation, error) {
	return s.Store.Donations().ListDonationsForUser(ctx, userID)
}
