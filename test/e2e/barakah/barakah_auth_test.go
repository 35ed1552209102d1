package barakah_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	baseURL, cleanup := setupBarakahContainer(t)
	defer cleanup()

	t.Run("register and login", func(t *testing.T) {
		client := newClient(t)

		resp, body := postJSON(t, client, baseURL+"/v1/auth/register", map[string]string{
			"email":    "fatimah@example.com",
			"name":     "Fatimah",
			"password": "correct horse battery",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var user struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(body, &user))
		require.NotEmpty(t, user.ID)
		require.Equal(t, "fatimah@example.com", user.Email)

		login(t, client, baseURL, "fatimah@example.com", "correct horse battery")
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		client := newClient(t)

		resp, _ := postJSON(t, client, baseURL+"/v1/auth/register", map[string]string{
			"email":    "taken@example.com",
			"name":     "First",
			"password": "first password!",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, _ = postJSON(t, client, baseURL+"/v1/auth/register", map[string]string{
			"email":    "taken@example.com",
			"name":     "Second",
			"password": "second password!",
		})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		client := newClient(t)
		registerAndLogin(t, client, baseURL, "careful@example.com", "the real password")

		fresh := newClient(t)
		resp, _ := postJSON(t, fresh, baseURL+"/v1/auth/login", map[string]string{
			"email":    "careful@example.com",
			"password": "not the password",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.False(t, hasSessionCookie(resp))
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		client := newClient(t)
		registerAndLogin(t, client, baseURL, "leaver@example.com", "goodbye for now!")

		// Donation history requires a live session.
		resp, _ := getJSON(t, client, baseURL+"/v1/donations")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		logoutResp, err := client.Post(baseURL+"/v1/auth/logout", "application/json", nil)
		require.NoError(t, err)
		defer logoutResp.Body.Close()
		require.Equal(t, http.StatusNoContent, logoutResp.StatusCode)

		resp, _ = getJSON(t, client, baseURL+"/v1/donations")
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	})

	t.Run("seeded admin can sign in", func(t *testing.T) {
		client := newClient(t)
		login(t, client, baseURL, adminEmail, adminPassword)

		resp, _ := getJSON(t, client, baseURL+"/v1/admin/users")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
