package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cryptly-dev/cryptly/internal/core/service"
	"github.com/cryptly-dev/cryptly/internal/core/store"
	"github.com/cryptly-dev/cryptly/pkg/httpx"
	"github.com/cryptly-dev/cryptly/pkg/jwtx"
	"github.com/cryptly-dev/cryptly/pkg/slogx"

	_ "github.com/cryptly-dev/cryptly/api/core" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	ProjectService    *service.ProjectService
	InvitationService *service.InvitationService
	DeviceService     *service.DeviceService
	WebhookService    *service.WebhookService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerProjects()
	r.registerInvitations()
	r.registerDevices()
	r.registerWebhooks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Cryptly Core Service API
//	@version		0.1.0
//	@description	Access control and key distribution core for the Cryptly secrets manager.
//	@description
//	@description				Secrets stay encrypted end to end: the server stores opaque ciphertext and
//	@description				brokers wrapped key material during invitation and device pairing flows.
//
//	@contact.name				Cryptly Team
//	@contact.url				https://github.com/cryptly-dev/cryptly
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: r.ProjectService}

	// POST /v1/projects - moderate rate limit by user
	r.Mux.Handle("POST /v1/projects",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /v1/projects/{id} - lenient rate limit (read path)
	r.Mux.Handle("GET /v1/projects/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// PUT /v1/projects/{id}/secrets - moderate rate limit (write path)
	r.Mux.Handle("PUT /v1/projects/{id}/secrets",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateSecrets),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /v1/projects/{id}/members - lenient rate limit (read path)
	r.Mux.Handle("GET /v1/projects/{id}/members",
		httpx.Chain(http.HandlerFunc(h.HandleListMembers),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// PUT /v1/projects/{id}/members/{userId} - moderate rate limit (admin operation)
	r.Mux.Handle("PUT /v1/projects/{id}/members/{userId}",
		httpx.Chain(http.HandlerFunc(h.HandleSetMemberRole),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// DELETE /v1/projects/{id}/members/{userId} - moderate rate limit (admin operation)
	r.Mux.Handle("DELETE /v1/projects/{id}/members/{userId}",
		httpx.Chain(http.HandlerFunc(h.HandleRemoveMember),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	issueHandler := &InvitationIssueHandler{InvitationService: r.InvitationService}
	acceptHandler := &InvitationAcceptHandler{InvitationService: r.InvitationService}
	revokeHandler := &InvitationRevokeHandler{InvitationService: r.InvitationService}

	// POST /v1/invitations - moderate rate limit by user (mint operation)
	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(issueHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /v1/invitations/{id}/accept - strict rate limit (redemption endpoint,
	// the invitation id works like a capability token)
	r.Mux.Handle("POST /v1/invitations/{id}/accept",
		httpx.Chain(acceptHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	// POST /v1/invitations/{id}/revoke - moderate rate limit (admin operation)
	r.Mux.Handle("POST /v1/invitations/{id}/revoke",
		httpx.Chain(revokeHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerDevices() {
	h := &DevicesHandler{DeviceService: r.DeviceService}

	// POST /v1/devices/register - strict rate limit by IP (unauthenticated endpoint)
	r.Mux.Handle("POST /v1/devices/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /v1/devices/{id}/ping - lenient rate limit by IP (devices poll this)
	r.Mux.Handle("GET /v1/devices/{id}/ping",
		httpx.Chain(http.HandlerFunc(h.HandlePing),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /v1/devices/{id}/approve - moderate rate limit by user
	r.Mux.Handle("POST /v1/devices/{id}/approve",
		httpx.Chain(http.HandlerFunc(h.HandleApprove),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerWebhooks() {
	h := &GitHubWebhookHandler{WebhookService: r.WebhookService}

	// POST /webhooks/github - moderate rate limit by IP (signed but unauthenticated)
	r.Mux.Handle("POST /webhooks/github",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
