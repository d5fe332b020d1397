package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lendtrack/backend/internal/db"
	"github.com/lendtrack/backend/internal/handlers"
	"github.com/lendtrack/backend/internal/logger"
	"github.com/lendtrack/backend/internal/repositories"
	"github.com/lendtrack/backend/internal/services"
)

func main() {
	// Local .env is optional.
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Database connection
	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info("database ready", zap.String("driver", config.Driver))

	// Repositories
	loanRepo := repositories.NewLoanRepository(database)
	collectionRepo := repositories.NewCollectionRepository(database)
	fundRepo := repositories.NewFundRepository(database)

	// Services share one store revision so any write invalidates the
	// memoized derived views.
	rev := services.NewStoreRevision()
	loanService := services.NewLoanService(loanRepo, collectionRepo, rev)
	collectionService := services.NewCollectionService(loanRepo, collectionRepo, rev)
	fundService := services.NewFundService(fundRepo, rev)
	reportingService := services.NewReportingService(loanRepo, collectionRepo, fundRepo, rev)

	// Handlers
	loanHandler := handlers.NewLoanHandler(loanService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	fundHandler := handlers.NewFundHandler(fundService)
	reportingHandler := handlers.NewReportingHandler(reportingService)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		status := "healthy"
		code := http.StatusOK
		if err := database.Health(); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  status,
			"service": "lendtrack-backend",
		})
	})

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/loans", loanHandler.HandleLoans).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/loans/{id}", loanHandler.HandleLoan).Methods(http.MethodGet, http.MethodPut, http.MethodDelete)
	api.HandleFunc("/loans/{id}/disable", loanHandler.HandleDisableLoan).Methods(http.MethodPost)
	api.HandleFunc("/loans/{id}/collections/bulk", collectionHandler.HandleBulkCollection).Methods(http.MethodPost)
	api.HandleFunc("/collections", collectionHandler.HandleCollections).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/funds", fundHandler.HandleFunds).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/reports/ledger", reportingHandler.HandleLedger).Methods(http.MethodGet)
	api.HandleFunc("/reports/summary", reportingHandler.HandleSummary).Methods(http.MethodGet)

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, corsHandler(router)); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
