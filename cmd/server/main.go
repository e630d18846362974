package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"balneario/internal/api"
	"balneario/internal/auth"
	"balneario/internal/cache"
	"balneario/internal/repository"
	"balneario/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	reservationRepo := repository.NewReservationRepository(db)
	capacityRepo := repository.NewCapacityRepository(db)
	userAuthRepo := repository.NewUserAuthRepository(db)
	jobRepo := repository.NewJobRepository(db)

	reportCache := cache.NewReportCache(cache.NewRedisClient(), parseDuration(os.Getenv("REPORT_CACHE_TTL"), 60*time.Second))

	stripeSvc := service.NewStripeService()
	senderSvc := service.NewSenderService()
	reservationSvc := service.NewReservationService(reservationRepo, capacityRepo, stripeSvc, senderSvc)
	reportSvc := service.NewReportService(reservationRepo, capacityRepo, reportCache)
	configSvc := service.NewConfigService(capacityRepo)
	authSvc := service.NewAuthService(userAuthRepo)
	jobSvc := service.NewJobService(jobRepo)

	reservationHandler := api.NewReservationHandler(reservationSvc)
	reportHandler := api.NewReportHandler(reportSvc)
	configHandler := api.NewServiceConfigHandler(configSvc)
	authHandler := api.NewAuthHandler(authSvc)
	webhookHandler := api.NewStripeWebhookHandler(os.Getenv("STRIPE_WEBHOOK_SECRET"), reservationSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/accounts", authHandler.CreateAccount).Methods("POST")
	r.HandleFunc("/api/stripe/webhook", webhookHandler.HandleWebhook).Methods("POST")

	// Establishment endpoints (protected)
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(auth.EstablishmentAuthMiddleware)
	protected.HandleFunc("/availability", reservationHandler.CheckAvailability).Methods("POST")
	protected.HandleFunc("/reservation-groups", reservationHandler.CreateReservationGroup).Methods("POST")
	protected.HandleFunc("/reservation-groups", reservationHandler.ListReservationGroups).Methods("GET")
	protected.HandleFunc("/reservation-groups/{code}", reservationHandler.GetReservationGroup).Methods("GET")
	protected.HandleFunc("/reservation-groups/{code}", reservationHandler.UpdateReservationGroup).Methods("PUT")
	protected.HandleFunc("/reservation-groups/{code}", reservationHandler.CancelReservationGroup).Methods("DELETE")
	protected.HandleFunc("/reports/occupancy", reportHandler.Occupancy).Methods("GET")
	protected.HandleFunc("/services", configHandler.ListServices).Methods("GET")
	protected.HandleFunc("/services/{service_type}", configHandler.UpdateService).Methods("PUT")

	// Unpaid online bookings hold their resource for at most a day.
	c := cron.New()
	c.AddFunc("@hourly", func() {
		if err := jobSvc.CancelStaleUnpaidGroups(24 * time.Hour); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.Start()

	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(strings.Split(corsOrigins, ",")),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
