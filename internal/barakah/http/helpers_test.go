package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/payments"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store/drivers/sqlite"
	"github.com/AnthonyMuncherz/barakahbot/pkg/idx"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

type fixture struct {
	Router *Router
	Store  store.Store
	Auth   *service.AuthService
}

// newFixture builds a router over a fresh in-memory database with roles
// seeded and all services wired. The payment client points at srv when
// given, so checkout tests can fake the provider.
func newFixture(t *testing.T, checkoutBaseURL string) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	ctx := context.Background()
	for _, name := range []string{domain.RoleAdmin, domain.RoleDonor} {
		require.NoError(t, st.Roles().CreateRole(ctx, domain.Role{ID: idx.New().String(), Name: name}))
	}

	auth := &service.AuthService{
		Store:      st,
		SigningKey: []byte("router-test-key"),
		Issuer:     "barakahbot-test",
		SessionTTL: time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter("test", st, auth, testWebhookSecret, time.Hour, logger)
	router.MFAService = &service.MFAService{Store: st, Issuer: "BarakahBot"}
	router.CampaignService = &service.CampaignService{Store: st}
	router.DonationService = &service.DonationService{
		Store: st,
		Checkout: payments.NewClient(payments.Config{
			BaseURL:    checkoutBaseURL,
			SecretKey:  "sk_test",
			SuccessURL: "https://example.com/thanks",
			CancelURL:  "https://example.com/donate",
		}),
	}
	router.ApplyRoutes()

	return &fixture{Router: router, Store: st, Auth: auth}
}

// signIn registers a user (promoting to admin when asked) and returns the
// session cookie a browser would hold.
func (f *fixture) signIn(t *testing.T, email string, admin bool) *http.Cookie {
	t.Helper()
	ctx := context.Background()

	user, err := f.Auth.Register(ctx, email, "Test User", "a fine password")
	require.NoError(t, err)

	if admin {
		role, err := f.Store.Roles().GetRoleByName(ctx, domain.RoleAdmin)
		require.NoError(t, err)
		require.NoError(t, f.Store.Users().UpdateUserRole(ctx, user.ID, role.ID))
	}

	credential, _, err := f.Auth.Login(ctx, email, "a fine password", "")
	require.NoError(t, err)

	return &http.Cookie{Name: SessionCookie, Value: credential}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.Router.ServeHTTP(rec, req)
	return rec
}
