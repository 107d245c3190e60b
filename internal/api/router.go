package api

import (
	"net/http"

	"github.com/Rrens/kopiloka/internal/api/handler"
	customMiddleware "github.com/Rrens/kopiloka/internal/api/middleware"
	"github.com/Rrens/kopiloka/internal/assistant"
	"github.com/Rrens/kopiloka/internal/catalog"
	"github.com/Rrens/kopiloka/internal/config"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/events"
	"github.com/Rrens/kopiloka/internal/security"
	"github.com/Rrens/kopiloka/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// Dependencies are the long-lived components the router wires together
type Dependencies struct {
	Store     domain.DocumentStore
	Catalog   *catalog.Catalog
	Responder *assistant.Responder
	Publisher events.Publisher
	// ChatLimiter is optional; chat is unlimited without it
	ChatLimiter customMiddleware.Limiter
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", customMiddleware.SessionHeader},
		ExposedHeaders:   []string{"X-Request-ID", customMiddleware.SessionHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Initialize services
	authService := service.NewAuthService(deps.Store, jwtManager)
	cartService := service.NewCartService(deps.Store, deps.Catalog)
	orderService := service.NewOrderService(deps.Store, cartService, deps.Publisher)
	sellerService := service.NewSellerService(deps.Store)
	chatService := service.NewChatService(
		deps.Store,
		deps.Responder,
		deps.Catalog,
		cfg.Assistant.ReplyDelayMin,
		cfg.Assistant.ReplyDelayMax,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	sellerHandler := handler.NewSellerHandler(sellerService, authService)
	chatHandler := handler.NewChatHandler(chatService)

	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(deps.Store))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Catalog
		r.Get("/products", catalogHandler.List)
		r.Get("/products/featured", catalogHandler.Featured)
		r.Get("/products/{id}", catalogHandler.Get)
		r.Get("/catalog/filters", catalogHandler.Filters)

		// Session scoped routes
		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.Session)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.Get)
				r.Delete("/", cartHandler.Clear)
				r.Post("/items", cartHandler.AddItem)
				r.Patch("/items/{productID}", cartHandler.UpdateItem)
				r.Delete("/items/{productID}", cartHandler.RemoveItem)
			})

			r.With(authMiddleware.Optional).Post("/checkout", orderHandler.Checkout)

			r.Route("/chat", func(r chi.Router) {
				r.Get("/", chatHandler.History)
				r.Get("/suggestions", chatHandler.Suggestions)
				r.Post("/reset", chatHandler.Reset)

				if deps.ChatLimiter != nil {
					r.With(customMiddleware.NewRateLimitMiddleware(deps.ChatLimiter).Limit).
						Post("/messages", chatHandler.Send)
				} else {
					log.Warn().Msg("chat rate limiting disabled")
					r.Post("/messages", chatHandler.Send)
				}
			})
		})

		// Buyer dashboard
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(customMiddleware.RequireRole(domain.RoleBuyer))
			r.Get("/buyer/orders", orderHandler.BuyerOrders)
		})

		// Seller dashboard
		r.Route("/seller", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(customMiddleware.RequireRole(domain.RoleSeller))

			r.Get("/stats", sellerHandler.Stats)
			r.Get("/products", sellerHandler.List)
			r.Post("/products", sellerHandler.Create)
			r.Put("/products/{id}", sellerHandler.Update)
			r.Delete("/products/{id}", sellerHandler.Delete)
		})
	})

	return r
}
