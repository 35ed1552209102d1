package chatbot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	t.Parallel()

	t.Run("prepends the system instruction and returns the reply", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/chat/completions", r.URL.Path)
			require.Equal(t, "Bearer key_test", r.Header.Get("Authorization"))

			var req completionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Messages, 3)
			require.Equal(t, RoleSystem, req.Messages[0].Role)
			require.Equal(t, "You help with Zakat questions.", req.Messages[0].Content)
			require.Equal(t, RoleUser, req.Messages[1].Role)

			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Zakat is 2.5% of qualifying wealth."}}]}`))
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL, APIKey: "key_test"})
		reply, err := client.Complete(context.Background(),
			"You help with Zakat questions.",
			[]Turn{
				{Role: RoleUser, Content: "What is Zakat?"},
				{Role: RoleAssistant, Content: "A yearly obligation."},
			})
		require.NoError(t, err)
		require.Equal(t, "Zakat is 2.5% of qualifying wealth.", reply)
	})

	t.Run("surfaces upstream error messages", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})
		_, err := client.Complete(context.Background(), "", []Turn{{Role: RoleUser, Content: "hi"}})
		require.ErrorContains(t, err, "rate limited")
	})

	t.Run("errors on empty choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})
		_, err := client.Complete(context.Background(), "", []Turn{{Role: RoleUser, Content: "hi"}})
		require.ErrorContains(t, err, "no choices")
	})
}
