package main

import (
	"fmt"
	"log"
	"net/http"

	"venue-management-platform/internal/config"
	"venue-management-platform/internal/database"
	"venue-management-platform/internal/handlers"
	"venue-management-platform/internal/middleware"
	"venue-management-platform/internal/repositories"
	"venue-management-platform/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	dbConfig := database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}

	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established successfully")

	// Run pending migrations on startup
	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize repositories
	customerRepo := repositories.NewCustomerRepository(db.DB)
	catalogRepo := repositories.NewCatalogRepository(db.DB)
	checkoutRepo := repositories.NewCheckoutRepository(db.DB)

	// Initialize services
	checkoutService := services.NewCheckoutService(customerRepo, catalogRepo, checkoutRepo)
	catalogService := services.NewCatalogService(catalogRepo)

	// Initialize handlers
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Set up router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", catalogHandler.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/checkout", checkoutHandler.Checkout)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/tickets", catalogHandler.ListTicketTypes)
			r.Get("/menu", catalogHandler.ListMenuItems)
			r.Get("/merchandise", catalogHandler.ListMerchandiseItems)
		})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
