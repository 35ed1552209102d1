package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store/drivers/sqlite"
	"github.com/AnthonyMuncherz/barakahbot/pkg/idx"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()
	ctx := context.Background()

	role := domain.Role{ID: idx.New().String(), Name: "donor-" + idx.New().String()}
	require.NoError(t, st.Roles().CreateRole(ctx, role))

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		RoleID:       role.ID,
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))
	return u
}

func seedCampaign(t *testing.T, st store.Store) domain.Campaign {
	t.Helper()
	ctx := context.Background()

	cat := domain.Category{ID: idx.New().String(), Name: "cat-" + idx.New().String()}
	require.NoError(t, st.Categories().CreateCategory(ctx, cat))

	c := domain.Campaign{
		ID:         idx.New().String(),
		Title:      "Water wells",
		CategoryID: cat.ID,
		GoalAmount: 500_000,
		Active:     true,
	}
	require.NoError(t, st.Campaigns().CreateCampaign(ctx, c))
	return c
}

func TestUsersRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("round trip by id and email", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "aisha@example.com")

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, got.Email)
		require.Nil(t, got.MFAEnabled)

		byEmail, err := st.Users().GetUserByEmail(ctx, "aisha@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "dup@example.com")

		err := st.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Email:        "dup@example.com",
			Name:         "Other",
			PasswordHash: "x",
			RoleID:       u.RoleID,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		_, err := st.Users().GetUserByID(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("mfa state", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "mfa@example.com")

		require.NoError(t, st.Users().UpdateMFASecret(ctx, u.ID, "JBSWY3DPEHPK3PXP"))
		require.NoError(t, st.Users().EnableMFA(ctx, u.ID))

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, got.MFAEnabled)
		require.NotNil(t, got.MFASecret)
		require.Equal(t, "JBSWY3DPEHPK3PXP", *got.MFASecret)

		require.NoError(t, st.Users().DisableMFA(ctx, u.ID))

		got, err = st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Nil(t, got.MFAEnabled)
		require.Nil(t, got.MFASecret)
	})

	t.Run("delete refuses users with donations", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "donor@example.com")
		require.NoError(t, st.Donations().CreateDonation(ctx, domain.Donation{
			ID:          idx.New().String(),
			UserID:      u.ID,
			Kind:        domain.DonationKindZakat,
			Amount:      10_000,
			Currency:    "myr",
			CheckoutRef: "cs_1",
			Status:      domain.DonationPending,
		}))

		require.ErrorIs(t, st.Users().DeleteUser(ctx, u.ID), store.ErrInUse)

		require.ErrorIs(t, st.Users().DeleteUser(ctx, "nope"), store.ErrNotFound)
	})
}

func TestSessionsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("revoke single", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "s1@example.com")
		s := domain.Session{
			ID:        idx.New().String(),
			UserID:    u.ID,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		require.NoError(t, st.Sessions().CreateSession(ctx, s))

		got, err := st.Sessions().GetSessionByID(ctx, s.ID)
		require.NoError(t, err)
		require.True(t, got.Active(time.Now()))

		require.NoError(t, st.Sessions().RevokeSession(ctx, s.ID, time.Now()))

		got, err = st.Sessions().GetSessionByID(ctx, s.ID)
		require.NoError(t, err)
		require.NotNil(t, got.RevokedAt)
		require.False(t, got.Active(time.Now()))
	})

	t.Run("revoke all for user", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "s2@example.com")
		ids := make([]string, 0, 3)
		for range 3 {
			s := domain.Session{
				ID:        idx.New().String(),
				UserID:    u.ID,
				ExpiresAt: time.Now().Add(time.Hour),
			}
			require.NoError(t, st.Sessions().CreateSession(ctx, s))
			ids = append(ids, s.ID)
		}

		require.NoError(t, st.Sessions().RevokeSessionsForUser(ctx, u.ID, time.Now()))

		for _, id := range ids {
			got, err := st.Sessions().GetSessionByID(ctx, id)
			require.NoError(t, err)
			require.NotNil(t, got.RevokedAt)
		}
	})

	t.Run("delete expired", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "s3@example.com")
		expired := domain.Session{
			ID:        idx.New().String(),
			UserID:    u.ID,
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		live := domain.Session{
			ID:        idx.New().String(),
			UserID:    u.ID,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		require.NoError(t, st.Sessions().CreateSession(ctx, expired))
		require.NoError(t, st.Sessions().CreateSession(ctx, live))

		require.NoError(t, st.Sessions().DeleteExpiredSessions(ctx, time.Now()))

		_, err := st.Sessions().GetSessionByID(ctx, expired.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Sessions().GetSessionByID(ctx, live.ID)
		require.NoError(t, err)
	})
}

func TestDonationsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("payment ref is unique once set", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "d1@example.com")
		first := domain.Donation{
			ID:          idx.New().String(),
			UserID:      u.ID,
			Kind:        domain.DonationKindZakat,
			Amount:      10_000,
			Currency:    "myr",
			CheckoutRef: "cs_a",
			Status:      domain.DonationPending,
		}
		second := first
		second.ID = idx.New().String()
		second.CheckoutRef = "cs_b"
		require.NoError(t, st.Donations().CreateDonation(ctx, first))
		require.NoError(t, st.Donations().CreateDonation(ctx, second))

		require.NoError(t, st.Donations().MarkCompleted(ctx, first.ID, "py_1", time.Now()))

		err := st.Donations().MarkCompleted(ctx, second.ID, "py_1", time.Now())
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		got, err := st.Donations().GetDonationByPaymentRef(ctx, "py_1")
		require.NoError(t, err)
		require.Equal(t, first.ID, got.ID)
		require.Equal(t, domain.DonationCompleted, got.Status)
	})

	t.Run("lookup by checkout ref", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "d2@example.com")
		d := domain.Donation{
			ID:          idx.New().String(),
			UserID:      u.ID,
			Kind:        domain.DonationKindZakat,
			Amount:      5_000,
			Currency:    "myr",
			CheckoutRef: "cs_lookup",
			Status:      domain.DonationPending,
		}
		require.NoError(t, st.Donations().CreateDonation(ctx, d))

		got, err := st.Donations().GetDonationByCheckoutRef(ctx, "cs_lookup")
		require.NoError(t, err)
		require.Equal(t, d.ID, got.ID)
	})

	t.Run("stale pending sweep keeps completed rows", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "d3@example.com")
		old := time.Now().Add(-48 * time.Hour)

		stale := domain.Donation{
			ID:          idx.New().String(),
			UserID:      u.ID,
			Kind:        domain.DonationKindZakat,
			Amount:      2_000,
			Currency:    "myr",
			CheckoutRef: "cs_stale",
			Status:      domain.DonationPending,
			CreatedAt:   old,
			UpdatedAt:   old,
		}
		settled := domain.Donation{
			ID:          idx.New().String(),
			UserID:      u.ID,
			Kind:        domain.DonationKindZakat,
			Amount:      2_000,
			Currency:    "myr",
			CheckoutRef: "cs_settled",
			PaymentRef:  "py_settled",
			Status:      domain.DonationCompleted,
			CreatedAt:   old,
			UpdatedAt:   old,
		}
		require.NoError(t, st.Donations().CreateDonation(ctx, stale))
		require.NoError(t, st.Donations().CreateDonation(ctx, settled))

		require.NoError(t, st.Donations().DeleteStalePending(ctx, time.Now().Add(-24*time.Hour)))

		_, err := st.Donations().GetDonationByID(ctx, stale.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Donations().GetDonationByID(ctx, settled.ID)
		require.NoError(t, err)
	})
}

func TestCampaignsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create rejects unknown category", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		err := st.Campaigns().CreateCampaign(ctx, domain.Campaign{
			ID:         idx.New().String(),
			Title:      "Orphaned",
			CategoryID: "nope",
			GoalAmount: 1_000,
			Active:     true,
		})
		require.ErrorIs(t, err, store.ErrInUse)
	})

	t.Run("add collected accumulates", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		c := seedCampaign(t, st)
		require.NoError(t, st.Campaigns().AddCollected(ctx, c.ID, 10_000))
		require.NoError(t, st.Campaigns().AddCollected(ctx, c.ID, 2_500))

		got, err := st.Campaigns().GetCampaignByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, int64(12_500), got.Collected)
	})

	t.Run("active filter", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		c := seedCampaign(t, st)
		closed := c
		closed.ID = idx.New().String()
		closed.Title = "Closed drive"
		closed.Active = false
		require.NoError(t, st.Campaigns().CreateCampaign(ctx, closed))

		active, err := st.Campaigns().ListCampaigns(ctx, true)
		require.NoError(t, err)
		require.Len(t, active, 1)
		require.Equal(t, c.ID, active[0].ID)

		all, err := st.Campaigns().ListCampaigns(ctx, false)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})

	t.Run("category delete refused while referenced", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		c := seedCampaign(t, st)
		require.ErrorIs(t, st.Categories().DeleteCategory(ctx, c.CategoryID), store.ErrInUse)

		require.NoError(t, st.Campaigns().DeleteCampaign(ctx, c.ID))
		require.NoError(t, st.Categories().DeleteCategory(ctx, c.CategoryID))
	})
}

func TestWithTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("commit on nil", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		u := seedUser(t, st, "tx1@example.com")
		c := seedCampaign(t, st)

		err := st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Donations().CreateDonation(ctx, domain.Donation{
				ID:          idx.New().String(),
				UserID:      u.ID,
				CampaignID:  &c.ID,
				Kind:        domain.DonationKindCampaign,
				Amount:      7_500,
				Currency:    "myr",
				CheckoutRef: "cs_tx",
				Status:      domain.DonationCompleted,
				PaymentRef:  "py_tx",
			}); err != nil {
				return err
			}
			return tx.Campaigns().AddCollected(ctx, c.ID, 7_500)
		})
		require.NoError(t, err)

		got, err := st.Campaigns().GetCampaignByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, int64(7_500), got.Collected)
	})

	t.Run("rollback on error", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)

		c := seedCampaign(t, st)

		boom := context.Canceled
		err := st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Campaigns().AddCollected(ctx, c.ID, 9_999); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := st.Campaigns().GetCampaignByID(ctx, c.ID)
		require.NoError(t, err)
		require.Zero(t, got.Collected)
	})
}
