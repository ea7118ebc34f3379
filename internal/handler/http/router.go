package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TrioProject-10/Smart-Buy-Main/internal/domain"
	"github.com/TrioProject-10/Smart-Buy-Main/internal/service"
	"github.com/TrioProject-10/Smart-Buy-Main/pkg/health"
	"github.com/TrioProject-10/Smart-Buy-Main/pkg/middleware"
)

// RouterConfig carries the dependencies and settings for building the HTTP router.
type RouterConfig struct {
	ReviewService  *service.ReviewService
	ProductService *service.ProductService
	CatalogService *service.CatalogService
	UserService    *service.UserService

	TokenValidator middleware.TokenValidator
	HealthHandler  *health.Handler
	CORS           middleware.CORSConfig
	PprofCIDRs     []string
	ServiceName    string
	Logger         *slog.Logger
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.RequestLogger(cfg.Logger))

	// Health and observability endpoints
	r.Get("/health/live", cfg.HealthHandler.LivenessHandler())
	r.Get("/health/ready", cfg.HealthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())
	middleware.RegisterPprof(r, cfg.PprofCIDRs, cfg.Logger)

	authed := middleware.Auth(cfg.TokenValidator)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	reviewHandler := NewReviewHandler(cfg.ReviewService, cfg.Logger)
	productHandler := NewProductHandler(cfg.ProductService, cfg.Logger)
	categoryHandler := NewCategoryHandler(cfg.CatalogService, cfg.Logger)
	brandHandler := NewBrandHandler(cfg.CatalogService, cfg.Logger)
	adminHandler := NewAdminHandler(cfg.CatalogService, cfg.Logger)
	authHandler := NewAuthHandler(cfg.UserService, cfg.Logger)

	// Account and session endpoints
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authed)

			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})
	})

	// Review endpoints. Reads are public, writes need a bearer token.
	r.Route("/api/v1/reviews", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", reviewHandler.ListAll)
		r.Get("/product/{productName}", reviewHandler.ListByProduct)
		r.Get("/product/{productName}/rating", reviewHandler.Rating)

		r.Group(func(r chi.Router) {
			r.Use(authed)

			r.Post("/", reviewHandler.Submit)
			r.Get("/me", reviewHandler.MyReviews)
			r.Put("/{id}", reviewHandler.Update)
			r.Delete("/{id}", reviewHandler.Delete)
		})
	})

	// Public catalog reads
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Get("/{id}", productHandler.GetProduct)
	})

	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Use(middleware.CacheControl(300))

		r.Get("/", categoryHandler.ListCategories)
		r.Get("/{id}", categoryHandler.GetCategory)
	})

	r.Route("/api/v1/brands", func(r chi.Router) {
		r.Use(middleware.CacheControl(300))

		r.Get("/", brandHandler.ListBrands)
		r.Get("/{id}", brandHandler.GetBrand)
	})

	// Admin catalog management
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(authed)
		r.Use(adminOnly)

		r.Get("/stats", adminHandler.Stats)

		r.Route("/products", func(r chi.Router) {
			r.Post("/", productHandler.CreateProduct)
			r.Put("/{id}", productHandler.UpdateProduct)
			r.Delete("/{id}", productHandler.DeleteProduct)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", categoryHandler.CreateCategory)
			r.Put("/{id}", categoryHandler.UpdateCategory)
			r.Delete("/{id}", categoryHandler.DeleteCategory)
		})

		r.Route("/brands", func(r chi.Router) {
			r.Post("/", brandHandler.CreateBrand)
			r.Put("/{id}", brandHandler.UpdateBrand)
			r.Delete("/{id}", brandHandler.DeleteBrand)
		})
	})

	return r
}
