package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

// SessionCookie is the cookie carrying the signed session credential.
const SessionCookie = "barakah_session"

// Destinations the gate redirects to. All authorization failures resolve to
// a redirect, never a raw error; the two failure destinations stay distinct
// so "not signed in" and "not allowed" read differently to the user.
const (
	SignInPath       = "/signin"
	DashboardPath    = "/dashboard"
	AccessDeniedPath = "/access-denied"
)

// redirectedFromParam tells the sign-in page where to send the user back to
// after a successful login.
const redirectedFromParam = "redirectedFrom"

// Gate guards routes behind session resolution. Every decision is made per
// request from the store's current state; nothing is memoized across
// requests.
type Gate struct {
	Auth *service.AuthService
}

// RequireSession admits any caller whose credential resolves, regardless of
// role. Anonymous callers are sent to sign-in with a reference back to the
// path they wanted; callers presenting a dud credential additionally get the
// cookie cleared so they do not loop on a failed resolution.
func (g *Gate) RequireSession() httpx.Middleware {
	return g.require(service.AccessStandard)
}

// RequireAdmin admits only callers holding the admin role. Authenticated
// non-admins are sent to access-denied rather than sign-in; they are the
// right person for their account, just not for this page.
func (g *Gate) RequireAdmin() httpx.Middleware {
	return g.require(service.AccessAdmin)
}

func (g *Gate) require(minimum service.AccessLevel) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, present := sessionCredential(r)
			if !present {
				redirectToSignIn(w, r)
				return
			}

			access, err := g.Auth.ResolveCredential(r.Context(), credential)
			if err != nil {
				slogx.FromContext(r.Context()).Debug("session resolution failed", "err", err)
				clearSessionCookie(w)
				redirectToSignIn(w, r)
				return
			}

			if access.Level < minimum {
				http.Redirect(w, r, AccessDeniedPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(withAccess(r.Context(), access)))
		})
	}
}

// RedirectAuthenticated short-circuits the sign-in page for callers who
// already hold a working session, sending them to the dashboard instead of
// letting them re-authenticate.
func (g *Gate) RedirectAuthenticated() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if credential, present := sessionCredential(r); present {
				if _, err := g.Auth.ResolveCredential(r.Context(), credential); err == nil {
					http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Optional resolves the credential when present but never redirects; pages
// that render for everyone use it to greet signed-in users.
func (g *Gate) Optional() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if credential, present := sessionCredential(r); present {
				if access, err := g.Auth.ResolveCredential(r.Context(), credential); err == nil {
					r = r.WithContext(withAccess(r.Context(), access))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sessionCredential(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func withAccess(ctx context.Context, access service.Access) context.Context {
	ctx = context.WithValue(ctx, httpx.CtxKeyUserID, access.UserID)
	ctx = context.WithValue(ctx, httpx.CtxKeySessionID, access.SessionID)
	return context.WithValue(ctx, httpx.CtxKeyRole, access.Role)
}

func redirectToSignIn(w http.ResponseWriter, r *http.Request) {
	target := SignInPath + "?" + url.Values{redirectedFromParam: {r.URL.Path}}.Encode()
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// SetSessionCookie installs the credential after login.
func SetSessionCookie(w http.ResponseWriter, credential string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    credential,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
