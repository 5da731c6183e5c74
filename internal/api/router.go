package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"minimart-backend/internal/application"
	"minimart-backend/internal/config"
	"minimart-backend/internal/ports"
	"minimart-backend/internal/render"
)

// NewRouter creates the chi router with all routes mounted.
func NewRouter(
	cfg *config.Config,
	directory *application.DirectoryService,
	catalog *application.CatalogService,
	splits *application.SplitService,
	gateway ports.PaymentGateway,
	logger zerolog.Logger,
) http.Handler {
	h := &Handlers{
		directory: directory,
		catalog:   catalog,
		splits:    splits,
		gateway:   gateway,
		metadata:  render.NewMetadataRenderer(),
		shell:     render.NewShell(cfg.ShellPath),
		logger:    logger,
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(corsOptions(cfg)))

	// Health check - must be public for monitoring
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	// Storefront surface: tenant resolved from the request host.
	r.Get("/", h.Storefront)
	r.Get("/product/{id}", h.StorefrontItem)

	r.Route("/api", func(r chi.Router) {
		r.Route("/payments", func(r chi.Router) {
			r.Get("/banks", h.ListBanks)
			r.Get("/validate", h.ValidateAccount)
			r.Post("/subaccount", h.CreateSubaccount)
			r.Post("/pay", h.InitializePayment)
			r.Get("/verify/{reference}", h.VerifyPayment)
			r.Post("/create-split", h.CreateSplit)
		})

		r.Route("/stores", func(r chi.Router) {
			r.Get("/{storeId}", h.GetStore)
			r.Get("/{storeId}/items/{itemId}", h.GetStoreItem)
		})
	})

	return r
}

// corsOptions is permissive in development and origin-restricted in
// production, selected by the deployment mode flag.
func corsOptions(cfg *config.Config) cors.Options {
	origins := []string{"*"}
	if cfg.IsProduction() {
		origins = cfg.AllowedOrigins
		if len(origins) == 0 {
			origins = []string{"https://*" + cfg.PlatformSuffix}
		}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
