package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
)

type donationsRepo struct {
	db dbtx
}

const donationColumns = `id, user_id, campaign_id, kind, amount, currency, checkout_ref, payment_ref, status, created_at, updated_at`

func scanDonation(row interface{ Scan(...any) error }) (domain.Donation, error) {
	var d domain.Donation
	var campaignID, paymentRef sql.NullString

	err := row.Scan(&d.ID, &d.UserID, &campaignID, &d.Kind, &d.Amount, &d.Currency,
		&d.CheckoutRef, &paymentRef, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.Donation{}, err
	}

	if campaignID.Valid {
		s := campaignID.String
		d.CampaignID = &s
	}
	d.PaymentRef = paymentRef.String
	return d, nil
}

func (r *donationsRepo) CreateDonation(ctx context.Context, d domain.Donation) error {
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}

	var campaignID any
	if d.CampaignID != nil {
		campaignID = *d.CampaignID
	}
	var paymentRef any
	if d.PaymentRef != "" {
		paymentRef = d.PaymentRef
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO donations (id, user_id, campaign_id, kind, amount, currency, checkout_ref, payment_ref, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.UserID, campaignID, d.Kind, d.Amount, d.Currency,
		d.CheckoutRef, paymentRef, d.Status, d.CreatedAt, d.UpdatedAt)
	return mapConstraint(err)
}

func (r *donationsRepo) GetDonationByID(ctx context.Context, id string) (domain.Donation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+donationColumns+` FROM donations WHERE id = ?`, id)
	d, err := scanDonation(row)
	if err != nil {
		return domain.Donation{}, mapNotFound(err)
	}
	return d, nil
}

func (r *donationsRepo) GetDonationByPaymentRef(ctx context.Context, ref string) (domain.Donation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+donationColumns+` FROM donations WHERE payment_ref = ?`, ref)
	d, err := scanDonation(row)
	if err != nil {
		return domain.Donation{}, mapNotFound(err)
	}
	return d, nil
}

func (r *donationsRepo) GetDonationByCheckoutRef(ctx context.Context, ref string) (domain.Donation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+donationColumns+` FROM donations WHERE checkout_ref = ?`, ref)
	d, err := scanDonation(row)
	if err != nil {
		return domain.Donation{}, mapNotFound(err)
	}
	return d, nil
}

func (r *donationsRepo) MarkCompleted(ctx context.Context, id, paymentRef string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE donations SET payment_ref = ?, status = ?, updated_at = ? WHERE id = ?`,
		paymentRef, domain.DonationCompleted, at, id)
	return mapConstraint(err)
}

func (r *donationsRepo) ListDonationsForUser(ctx context.Context, userID string) ([]domain.Donation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+donationColumns+` FROM donations WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func (r *donationsRepo) DeleteStalePending(ctx context.Context, before time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM donations WHERE status = ? AND created_at < ?`,
		domain.DonationPending, before)
	return err
}
