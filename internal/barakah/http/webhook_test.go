package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/payments"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves checkout session creation with unique ids.
func fakeProvider(t *testing.T) *httptest.Server {
	t.Helper()
	var calls atomic.Int64
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := fmt.Sprintf("cs_%d", calls.Add(1))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "url": "https://pay.example.com/" + id})
	}))
}

func completedEvent(t *testing.T, checkoutRef, paymentRef string, amount int64) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":   "evt_1",
		"type": payments.EventCheckoutCompleted,
		"data": map[string]any{
			"object": map[string]any{
				"id":             checkoutRef,
				"payment_intent": paymentRef,
				"amount_total":   amount,
				"currency":       "myr",
			},
		},
	})
	require.NoError(t, err)
	return payload
}

func postWebhook(f *fixture, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", bytes.NewReader(payload))
	if signature != "" {
		req.Header.Set(signatureHeader, signature)
	}
	return f.do(req)
}

func TestWebhookCompletesDonation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	provider := fakeProvider(t)
	t.Cleanup(provider.Close)
	f := newFixture(t, provider.URL)
	cookie := f.signIn(t, "donor@example.com", false)

	// Start a Zakat checkout through the API.
	body := bytes.NewBufferString(`{"amount": 5000}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/zakat/checkout", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	require.Equal(t, http.StatusOK, f.do(req).Code)

	donations, err := f.Store.Donations().ListDonationsForUser(ctx, userIDFor(t, f, "donor@example.com"))
	require.NoError(t, err)
	require.Len(t, donations, 1)
	pending := donations[0]
	require.Equal(t, domain.DonationPending, pending.Status)

	payload := completedEvent(t, pending.CheckoutRef, "pi_123", 5000)
	signature := payments.Sign(payload, testWebhookSecret, time.Now())

	require.Equal(t, http.StatusOK, postWebhook(f, payload, signature).Code)

	completed, err := f.Store.Donations().GetDonationByID(ctx, pending.ID)
	require.NoError(t, err)
	require.Equal(t, domain.DonationCompleted, completed.Status)
	require.Equal(t, "pi_123", completed.PaymentRef)

	t.Run("redelivery stays idempotent", func(t *testing.T) {
		require.Equal(t, http.StatusOK, postWebhook(f, payload, signature).Code)

		again, err := f.Store.Donations().GetDonationByID(ctx, pending.ID)
		require.NoError(t, err)
		require.Equal(t, completed.UpdatedAt, again.UpdatedAt, "second delivery must not rewrite the row")
	})
}

func TestWebhookRejectsBadSignatures(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "http://unused")
	payload := completedEvent(t, "cs_1", "pi_1", 1000)

	t.Run("missing signature", func(t *testing.T) {
		require.Equal(t, http.StatusBadRequest, postWebhook(f, payload, "").Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		signature := payments.Sign(payload, "whsec_other", time.Now())
		require.Equal(t, http.StatusBadRequest, postWebhook(f, payload, signature).Code)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		signature := payments.Sign(payload, testWebhookSecret, time.Now().Add(-payments.DefaultSignatureTolerance-time.Minute))
		require.Equal(t, http.StatusBadRequest, postWebhook(f, payload, signature).Code)
	})

	t.Run("tampered payload", func(t *testing.T) {
		signature := payments.Sign(payload, testWebhookSecret, time.Now())
		tampered := bytes.Replace(payload, []byte("1000"), []byte("9000"), 1)
		require.Equal(t, http.StatusBadRequest, postWebhook(f, tampered, signature).Code)
	})
}

func TestWebhookIgnoresUnknownEventTypes(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "http://unused")
	payload, err := json.Marshal(map[string]any{"id": "evt_x", "type": "charge.refunded"})
	require.NoError(t, err)
	signature := payments.Sign(payload, testWebhookSecret, time.Now())

	require.Equal(t, http.StatusOK, postWebhook(f, payload, signature).Code,
		"unknown events are acknowledged so the provider stops retrying")
}

func userIDFor(t *testing.T, f *fixture, email string) string {
	t.Helper()
	user, err := f.Store.Users().GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	return user.ID
}
