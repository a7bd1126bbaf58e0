package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/render"
	"github.com/aussiebroadwan/teamdir/internal/directory/service"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
	"github.com/aussiebroadwan/teamdir/pkg/httpx"
	"github.com/aussiebroadwan/teamdir/pkg/slogx"

	_ "github.com/aussiebroadwan/teamdir/api/teamdir" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store     store.Store
	renderer  *render.Renderer
	Directory *service.DirectoryService

	// ImageDir is served under /images/ when set.
	ImageDir string
}

func NewRouter(
	buildVersion string,
	st store.Store,
	renderer *render.Renderer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		renderer:     renderer,
		Directory:    &service.DirectoryService{Store: st},
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recoverer,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPages()
	r.registerMembers()
	r.registerImages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			teamdir Preview API
//	@version		0.1.0
//	@description	Local preview of the team directory. Serves the rendered grid and profile pages and the same data as JSON.
//	@description
//	@description	Filtering matches the grid controls: q (search), role, state and sort (order, name, name-desc).
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/teamdir
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPages() {
	h := &PagesHandler{
		Directory: r.Directory,
		Renderer:  r.renderer,
	}

	grid := httpx.Chain(http.HandlerFunc(h.HandleGrid),
		httpx.RateLimitByIP(httpx.PageLimit),
	)
	profile := httpx.Chain(http.HandlerFunc(h.HandleProfile),
		httpx.RateLimitByIP(httpx.PageLimit),
	)

	// "GET /{$}" only matches the root itself; anything else unmatched is a 404.
	r.Mux.Handle("GET /{$}", grid)
	r.Mux.Handle("GET /index.html", grid)
	r.Mux.Handle("GET /profile.html", profile)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{
		Directory: r.Directory,
		Renderer:  r.renderer,
	}

	limit := httpx.RateLimitByIP(httpx.APILimit)

	r.Mux.Handle("GET /v1/members", httpx.Chain(http.HandlerFunc(h.HandleList), limit))
	r.Mux.Handle("GET /v1/members/{slug}", httpx.Chain(http.HandlerFunc(h.HandleGet), limit))
	r.Mux.Handle("GET /v1/states", httpx.Chain(http.HandlerFunc(h.HandleStates), limit))
	r.Mux.Handle("GET /v1/roles", httpx.Chain(http.HandlerFunc(h.HandleRoles), limit))
}

func (r *Router) registerImages() {
	if r.ImageDir == "" {
		return
	}
	files := http.StripPrefix("/images/", http.FileServer(http.Dir(r.ImageDir)))
	r.Mux.Handle("GET /images/", httpx.Chain(files,
		httpx.RateLimitByIP(httpx.PageLimit),
	))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", httpx.Chain(
		LivezHandler(r.startTime, r.buildVersion),
		httpx.RateLimitByIP(httpx.HealthLimit),
	))
	r.Mux.Handle("GET /readyz", httpx.Chain(
		ReadyzHandler(r.startTime, r.buildVersion, r.store),
		httpx.RateLimitByIP(httpx.HealthLimit),
	))
}
