package http

import (
	"html/template"
	"net/http"

	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

// Minimal server-rendered pages. The real front-end talks to the JSON API;
// these exist so the gate's redirect destinations resolve and the flows are
// walkable end to end in a browser.

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - BarakahBot</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Body}}</p>
{{if .RedirectedFrom}}<p><small>You were redirected from {{.RedirectedFrom}}.</small></p>{{end}}
</body>
</html>
`))

type pageData struct {
	Title          string
	Body           string
	RedirectedFrom string
}

func renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		slogx.FromContext(r.Context()).Error("rendering page failed", "err", err)
	}
}

// PagesHandler serves the gate's landing destinations.
type PagesHandler struct{}

// HandleSignIn handles GET /signin. The gate's RedirectAuthenticated
// middleware sends already-signed-in callers to the dashboard before this
// runs.
func (h *PagesHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, pageData{
		Title:          "Sign in",
		Body:           "Sign in with POST /v1/auth/login.",
		RedirectedFrom: r.URL.Query().Get(redirectedFromParam),
	})
}

// HandleDashboard handles GET /dashboard.
func (h *PagesHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, pageData{
		Title: "Dashboard",
		Body:  "Signed in as user " + httpx.UserIDFromCtx(r.Context()) + ".",
	})
}

// HandleAdmin handles GET /admin.
func (h *PagesHandler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, pageData{
		Title: "Back office",
		Body:  "Admin tools live under /v1/admin/.",
	})
}

// HandleAccessDenied handles GET /access-denied. Reached by authenticated
// non-admins; deliberately distinct from the sign-in redirect.
func (h *PagesHandler) HandleAccessDenied(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_ = pageTemplate.Execute(w, pageData{
		Title: "Access denied",
		Body:  "Your account does not have permission to view that page.",
	})
}
