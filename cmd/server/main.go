package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/deveshkun/Rental-Fleet/internal/api"
	"github.com/deveshkun/Rental-Fleet/internal/auth"
	"github.com/deveshkun/Rental-Fleet/internal/repository"
	"github.com/deveshkun/Rental-Fleet/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
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

	vehicleRepo := repository.NewVehicleRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	jobRepo := repository.NewJobRepository(db)

	sender := service.NewSenderService()
	sessionSvc := service.NewSessionService(vehicleRepo, sender)
	authSvc := service.NewAuthService(otpRepo, sender)
	jobSvc := service.NewJobService(jobRepo, sessionSvc)

	vehicleHandler := api.NewVehicleHandler(vehicleRepo)
	sessionHandler := api.NewBookingSessionHandler(sessionSvc)
	authHandler := api.NewAuthHandler(authSvc)

	c := cron.New()
	c.AddFunc("@every 10m", func() {
		if err := jobSvc.PurgeExpiredOTPs(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.AddFunc("@every 5m", jobSvc.SweepIdleSessions)
	c.Start()
	defer c.Stop()

	r := mux.NewRouter()

	// Catalog
	r.HandleFunc("/api/vehicles", vehicleHandler.ListVehicles).Methods("GET")
	r.HandleFunc("/api/vehicles/{id}", vehicleHandler.GetVehicle).Methods("GET")

	// Booking sessions
	r.HandleFunc("/api/sessions", sessionHandler.CreateSession).Methods("POST")
	r.HandleFunc("/api/sessions/{code}/calendar", sessionHandler.SwitchCalendar).Methods("POST")
	r.HandleFunc("/api/sessions/{code}/dates", sessionHandler.PickDate).Methods("POST")
	r.HandleFunc("/api/sessions/{code}/times", sessionHandler.SetTimes).Methods("PUT")
	r.HandleFunc("/api/sessions/{code}/location", sessionHandler.SetLocation).Methods("PUT")
	r.HandleFunc("/api/sessions/{code}/addons", sessionHandler.SetAddOns).Methods("PUT")
	r.HandleFunc("/api/sessions/{code}/promo", sessionHandler.ApplyPromo).Methods("POST")
	r.HandleFunc("/api/sessions/{code}/quote", sessionHandler.GetQuote).Methods("GET")

	// Auth
	r.HandleFunc("/api/auth/send-email-otp", authHandler.SendEmailOTP).Methods("POST")
	r.HandleFunc("/api/auth/send-sms-otp", authHandler.SendSMSOTP).Methods("POST")
	r.HandleFunc("/api/auth/verify-email-otp", authHandler.VerifyEmailOTP).Methods("POST")

	// Confirmation requires a verified account
	confirm := r.PathPrefix("/api/sessions/{code}/confirm").Subrouter()
	confirm.Use(auth.AuthMiddleware)
	confirm.HandleFunc("", sessionHandler.Confirm).Methods("POST")

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins()),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{
		"http://localhost:5173",
		"http://localhost:8080",
		"https://justmyrides.com",
		"https://www.justmyrides.com",
		"https://justmyrides.vercel.app",
	}
}
