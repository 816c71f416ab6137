package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/service"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/store"
	"github.com/kawerewagaba/bucketlist/pkg/httpx"
	"github.com/kawerewagaba/bucketlist/pkg/jwtx"
	"github.com/kawerewagaba/bucketlist/pkg/slogx"

	_ "github.com/kawerewagaba/bucketlist/api/docs" // Swagger docs
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
	UserService       *service.UserService
	TokenService      *service.TokenService
	BucketlistService *service.BucketlistService
	ItemService       *service.ItemService
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

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerBucketlists()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Bucketlist Service API
//	@version		0.1.0
//	@description	REST backend for personal bucketlists: register, log in, then create,
//	@description	search and paginate bucketlists and the items inside them.
//	@description
//	@description				Access tokens are short-lived HMAC-signed JWTs; logout and
//	@description				password reset revoke the presented token immediately.
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

func (r *Router) registerAuth() {
	// POST /auth/register - strict rate limit by IP (account creation)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (credential guessing)
	loginHandler := &LoginHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/logout - moderate rate limit. The token arrives in the body
	// or header and is checked by the handler itself, so no authn middleware.
	logoutHandler := &LogoutHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /auth/reset-password - strict rate limit by IP
	resetHandler := &ResetPasswordHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}
	r.Mux.Handle("POST /auth/reset-password",
		httpx.Chain(resetHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerBucketlists() {
	lists := &BucketlistsHandler{BucketlistService: r.BucketlistService}
	items := &ItemsHandler{ItemService: r.ItemService}

	// All CRUD endpoints share the same protection: authenticate, then a
	// lenient per-user rate limit.
	secured := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier, r.TokenService.Revocations),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	// Collection endpoints answer with and without a trailing slash. Clients
	// written against the original API use /bucketlists/; the slash-less form
	// is canonical and is what the generated docs advertise.
	r.Mux.Handle("GET /bucketlists", secured(lists.HandleList))
	r.Mux.Handle("GET /bucketlists/{$}", secured(lists.HandleList))
	r.Mux.Handle("POST /bucketlists", secured(lists.HandleCreate))
	r.Mux.Handle("POST /bucketlists/{$}", secured(lists.HandleCreate))
	r.Mux.Handle("GET /bucketlists/{id}", secured(lists.HandleGet))
	r.Mux.Handle("PUT /bucketlists/{id}", secured(lists.HandleUpdate))
	r.Mux.Handle("DELETE /bucketlists/{id}", secured(lists.HandleDelete))

	r.Mux.Handle("GET /bucketlists/{id}/items", secured(items.HandleList))
	r.Mux.Handle("GET /bucketlists/{id}/items/{$}", secured(items.HandleList))
	r.Mux.Handle("POST /bucketlists/{id}/items", secured(items.HandleCreate))
	r.Mux.Handle("POST /bucketlists/{id}/items/{$}", secured(items.HandleCreate))
	r.Mux.Handle("GET /bucketlists/{id}/items/{item_id}", secured(items.HandleGet))
	r.Mux.Handle("PUT /bucketlists/{id}/items/{item_id}", secured(items.HandleUpdate))
	r.Mux.Handle("DELETE /bucketlists/{id}/items/{item_id}", secured(items.HandleDelete))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
