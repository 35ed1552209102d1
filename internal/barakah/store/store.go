package store

import (
	"context"
	"errors"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrInUse         = errors.New("store: still referenced")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and make service tests
// easy to scope.
type Store interface {
	Users() Users
	Roles() Roles
	Sessions() Sessions
	Campaigns() Campaigns
	Categories() Categories
	Donations() Donations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST Commit() or Rollback() the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing on nil and rolling
	// back on error. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	CreateUser(ctx context.Context, u domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUserRole(ctx context.Context, userID, roleID string) error
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error
	DeleteUser(ctx context.Context, userID string) error
	IsEmpty(ctx context.Context) (bool, error)

	// TOTP state for back-office accounts.
	UpdateMFASecret(ctx context.Context, userID, secret string) error
	EnableMFA(ctx context.Context, userID string) error
	DisableMFA(ctx context.Context, userID string) error
}

type Roles interface {
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)
	ListAll(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, role domain.Role) error
	IsEmpty(ctx context.Context) (bool, error)
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)
	RevokeSession(ctx context.Context, id string, at time.Time) error
	RevokeSessionsForUser(ctx context.Context, userID string, at time.Time) error
	DeleteExpiredSessions(ctx context.Context, before time.Time) error
}

type Campaigns interface {
	GetCampaignByID(ctx context.Context, id string) (domain.Campaign, error)
	ListCampaigns(ctx context.Context, activeOnly bool) ([]domain.Campaign, error)
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	UpdateCampaign(ctx context.Context, c domain.Campaign) error
	DeleteCampaign(ctx context.Context, id string) error

	// AddCollected increments collected_amount; called when a donation
	// completes, inside the same transaction that records it.
	AddCollected(ctx context.Context, id string, amount int64) error
}

type Categories interface {
	GetCategoryByID(ctx context.Context, id string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

type Donations interface {
	CreateDonation(ctx context.Context, d domain.Donation) error
	GetDonationByID(ctx context.Context, id string) (domain.Donation, error)

	// GetDonationByPaymentRef looks up a donation by its external payment
	// reference. Webhook idempotency hangs off this.
	GetDonationByPaymentRef(ctx context.Context, ref string) (domain.Donation, error)
	GetDonationByCheckoutRef(ctx context.Context, ref string) (domain.Donation, error)

	// MarkCompleted sets the payment reference and flips status to
	// completed.
	MarkCompleted(ctx context.Context, id, paymentRef string, at time.Time) error

	ListDonationsForUser(ctx context.Context, userID string) ([]domain.Donation, error)
	DeleteStalePending(ctx context.Context, before time.Time) error
}
