package domain

import "time"

// Donation lifecycle. A row is created as pending when checkout starts and
// moves to completed when the payment provider's webhook confirms it. The
// provider may redeliver confirmations; completion is idempotent per
// PaymentRef.
const (
	DonationPending   = "pending"
	DonationCompleted = "completed"
)

// Donation kinds: a direct Zakat payment or a campaign contribution.
const (
	DonationKindZakat    = "zakat"
	DonationKindCampaign = "campaign"
)

type Donation struct {
	ID          string
	UserID      string
	CampaignID  *string // nil for direct Zakat payments
	Kind        string
	Amount      int64 // MYR cents
	Currency    string
	CheckoutRef string // opaque checkout handle from the payment provider
	PaymentRef  string // external payment/transaction id, unique once completed
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
