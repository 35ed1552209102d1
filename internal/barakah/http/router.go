package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"

	_ "github.com/AnthonyMuncherz/barakahbot/api/barakah" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	gate          *Gate
	buildVersion  string
	startTime     time.Time
	logger        *slog.Logger
	webhookSecret string
	sessionMaxAge time.Duration

	store           store.Store
	AuthService     *service.AuthService
	MFAService      *service.MFAService
	CampaignService *service.CampaignService
	DonationService *service.DonationService
	ChatService     *service.ChatService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	auth *service.AuthService,
	webhookSecret string,
	sessionMaxAge time.Duration,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		gate:          &Gate{Auth: auth},
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		logger:        logger,
		webhookSecret: webhookSecret,
		sessionMaxAge: sessionMaxAge,
		store:         st,
		AuthService:   auth,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerZakat()
	r.registerCampaigns()
	r.registerDonations()
	r.registerChat()
	r.registerAdmin()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			BarakahBot API
//	@version		0.1.0
//	@description	Charity platform API: Zakat calculation per Malaysian jurisdiction,
//	@description	donation campaigns with hosted checkout, and a Zakat assistant chatbot.
//	@description
//	@description	Browser sessions are carried in the barakah_session cookie set by the
//	@description	login endpoint.
//
//	@contact.name	BarakahBot Team
//	@contact.url	https://github.com/AnthonyMuncherz/barakahbot
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:      r.AuthService,
		SessionMaxAgeSec: int(r.sessionMaxAge.Seconds()),
	}

	// Credential endpoints get the strict limit.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			r.gate.RequireSession(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	mfa := &MFAHandler{MFAService: r.MFAService}
	r.Mux.Handle("POST /v1/mfa/totp/enroll",
		httpx.Chain(http.HandlerFunc(mfa.HandleEnroll),
			r.gate.RequireSession(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/mfa/totp/verify",
		httpx.Chain(http.HandlerFunc(mfa.HandleVerify),
			r.gate.RequireSession(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerZakat() {
	h := &ZakatHandler{}

	r.Mux.Handle("GET /v1/zakat/jurisdictions",
		httpx.Chain(http.HandlerFunc(h.HandleJurisdictions),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /v1/zakat/calculate",
		httpx.Chain(http.HandlerFunc(h.HandleCalculate),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerCampaigns() {
	h := &CampaignsHandler{CampaignService: r.CampaignService}

	r.Mux.Handle("GET /v1/campaigns",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/campaigns/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/categories",
		httpx.Chain(http.HandlerFunc(h.HandleCategories),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerDonations() {
	h := &CheckoutHandler{DonationService: r.DonationService}

	// Checkout calls hit the payment provider; moderate limit by user.
	r.Mux.Handle("POST /v1/zakat/checkout",
		httpx.Chain(http.HandlerFunc(h.HandleZakat),
			r.gate.RequireSession(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/donations/checkout",
		httpx.Chain(http.HandlerFunc(h.HandleCampaign),
			r.gate.RequireSession(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/donations",
		httpx.Chain(http.HandlerFunc(h.HandleHistory),
			r.gate.RequireSession(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Signature-gated, never session-gated: the provider is the caller.
	webhook := &WebhookHandler{DonationService: r.DonationService, Secret: r.webhookSecret}
	r.Mux.Handle("POST /v1/webhooks/payments",
		httpx.Chain(webhook,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerChat() {
	h := &ChatHandler{ChatService: r.ChatService}

	// Each request costs an upstream completion; keep the limit moderate
	// even though the endpoint is public.
	r.Mux.Handle("POST /v1/chat",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	campaigns := &AdminCampaignsHandler{CampaignService: r.CampaignService}
	categories := &AdminCategoriesHandler{CampaignService: r.CampaignService}
	users := &AdminUsersHandler{Store: r.store}

	admin := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			r.gate.RequireAdmin(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/admin/campaigns", admin(http.HandlerFunc(campaigns.HandleCreate)))
	r.Mux.Handle("PUT /v1/admin/campaigns/{id}", admin(http.HandlerFunc(campaigns.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/admin/campaigns/{id}", admin(http.HandlerFunc(campaigns.HandleDelete)))

	r.Mux.Handle("POST /v1/admin/categories", admin(http.HandlerFunc(categories.HandleCreate)))
	r.Mux.Handle("DELETE /v1/admin/categories/{id}", admin(http.HandlerFunc(categories.HandleDelete)))

	r.Mux.Handle("GET /v1/admin/users", admin(http.HandlerFunc(users.HandleList)))
	r.Mux.Handle("PUT /v1/admin/users/{id}/role", admin(http.HandlerFunc(users.HandleChangeRole)))
	r.Mux.Handle("DELETE /v1/admin/users/{id}", admin(http.HandlerFunc(users.HandleDelete)))
}

func (r *Router) registerPages() {
	pages := &PagesHandler{}

	r.Mux.Handle("GET "+SignInPath,
		httpx.Chain(http.HandlerFunc(pages.HandleSignIn),
			r.gate.RedirectAuthenticated(),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET "+DashboardPath,
		httpx.Chain(http.HandlerFunc(pages.HandleDashboard),
			r.gate.RequireSession(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /admin",
		httpx.Chain(http.HandlerFunc(pages.HandleAdmin),
			r.gate.RequireAdmin(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET "+AccessDeniedPath, http.HandlerFunc(pages.HandleAccessDenied))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
