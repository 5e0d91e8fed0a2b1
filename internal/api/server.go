package api

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"tvusm/internal/cache"
	"tvusm/internal/config"
	"tvusm/internal/database"
	"tvusm/internal/external"
	"tvusm/internal/handlers"
	"tvusm/internal/messaging"
	"tvusm/internal/metrics"
	"tvusm/internal/middleware"
	"tvusm/internal/repository"
	"tvusm/internal/search"
	"tvusm/internal/service"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	cache    *cache.Client
	services *service.Services
	repos    *repository.Repositories
}

// NewServer wires the full dependency graph. Postgres is required; Redis,
// Elasticsearch and NATS are optional and their absence degrades the
// features they back (view dedup, search, events) without taking the API
// down.
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		slog.Warn("NATS unavailable, events will not be published", "error", err)
		natsClient = nil
	}

	viewCache, err := cache.New(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, news views will not be deduplicated", "error", err)
		viewCache = nil
	}

	var searchClient *search.NewsClient
	if cfg.Search.URL != "" {
		searchClient, err = search.NewNewsClient(cfg.Search)
		if err != nil {
			slog.Warn("Elasticsearch unavailable, news search falls back to SQL", "error", err)
			searchClient = nil
		}
	}

	paymentClient := external.NewPaymentClient(cfg.Payment)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, natsClient, paymentClient, viewCache, searchClient)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(metrics.Middleware())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		cache:    viewCache,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)

	staffOnly := middleware.RequireRole("staff", "manager", "admin")
	managerOnly := middleware.RequireRole("manager", "admin")

	api := s.router.Group("/api")
	// Auth is optional here: guests may browse and book with contact details;
	// a valid token attaches ownership. Protected groups below layer a
	// required check on top.
	api.Use(middleware.Auth(s.config.JWTSecret, false))
	{
		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("/availability", h.CheckAvailability)
			bookings.GET("/my-bookings", requireAuth(), h.ListMyBookings)
			bookings.GET("", staffOnly, h.ListBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.GET("/code/:code", h.GetBookingByCode)
			bookings.PATCH("/:id", staffOnly, h.UpdateBooking)
			bookings.DELETE("/:id", h.CancelBooking)
		}

		venues := api.Group("/venues")
		{
			venues.GET("", h.ListVenues)
			venues.GET("/:id", h.GetVenue)
			venues.POST("", managerOnly, h.CreateVenue)
			venues.PATCH("/:id", managerOnly, h.UpdateVenue)
		}

		courts := api.Group("/courts")
		{
			courts.GET("", h.ListCourts)
			courts.GET("/:id", h.GetCourt)
			courts.GET("/:id/related", h.ListRelatedCourts)
			courts.POST("", managerOnly, h.CreateCourt)
			courts.PATCH("/:id", managerOnly, h.UpdateCourt)
		}

		mappings := api.Group("/court-mappings")
		{
			mappings.GET("", h.ListCourtMappings)
			mappings.POST("", managerOnly, h.CreateCourtMapping)
			mappings.DELETE("/:id", managerOnly, h.DeleteCourtMapping)
		}

		payments := api.Group("/payments")
		{
			payments.POST("/initiate", h.InitiatePayment)
			payments.GET("/:id/status", h.CheckPayment)
			payments.GET("/success", h.NotifyPaymentCompleted)
			payments.GET("/fail", h.NotifyPaymentFailed)
			payments.POST("/notifications", h.OnPaymentUpdates)
		}

		equipment := api.Group("/equipment")
		{
			equipment.GET("", h.ListEquipment)
			equipment.GET("/:id", h.GetEquipment)
			equipment.POST("", managerOnly, h.CreateEquipment)
			equipment.PATCH("/:id", managerOnly, h.UpdateEquipment)
			equipment.POST("/rentals", staffOnly, h.RentEquipment)
			equipment.PATCH("/rentals/:id/return", staffOnly, h.ReturnEquipment)
		}

		maintenances := api.Group("/maintenances")
		{
			maintenances.GET("", h.ListMaintenances)
			maintenances.GET("/:id", h.GetMaintenance)
			maintenances.POST("", managerOnly, h.CreateMaintenance)
			maintenances.PATCH("/:id", managerOnly, h.UpdateMaintenance)
		}

		news := api.Group("/news")
		{
			news.GET("", h.ListNews)
			news.GET("/:id", h.GetNews)
			news.POST("", managerOnly, h.CreateNews)
			news.PATCH("/:id", managerOnly, h.UpdateNews)
		}

		api.GET("/users/me", requireAuth(), h.GetMe)

		notifications := api.Group("/notifications")
		notifications.Use(requireAuth())
		{
			notifications.GET("", h.ListNotifications)
			notifications.PATCH("/:id/read", h.MarkNotificationRead)
		}
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", metrics.Handler())
}

// requireAuth rejects requests that passed the optional auth middleware
// without presenting a token.
func requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user_id"); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	hc := s.db.HealthCheck(c.Request.Context())

	status := http.StatusOK
	if hc.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   hc.Status,
		"service":  "tvusm-api",
		"database": hc,
	})
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			log.Printf("Error closing NATS connection: %v", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
			return err
		}
	}

	return nil
}
