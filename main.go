package main

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gorilla/mux"
    "github.com/rs/cors"
    _ "github.com/lib/pq"

    "railbook/config"
    "railbook/handlers"
    "railbook/middleware"
    "railbook/timetable"
)

type HealthResponse struct {
    Status    string `json:"status"`
    DBStatus  string `json:"db_status"`
    Routes    int    `json:"routes_loaded"`
    DBDetails struct {
        Host     string `json:"host"`
        Port     string `json:"port"`
        Database string `json:"database"`
    } `json:"db_details"`
    Error string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
    response := HealthResponse{
        Status: "ok",
        Routes: len(timetable.Current().Routes()),
    }

    if config.DB == nil {
        response.Status = "error"
        response.DBStatus = "not_initialized"
        response.Error = "Database connection not initialized"
    } else if err := config.CheckPostgresHealth(); err != nil {
        response.Status = "error"
        response.DBStatus = "connection_error"
        response.Error = err.Error()
    } else {
        response.DBStatus = "connected"
        response.DBDetails.Host = os.Getenv("DB_HOST")
        response.DBDetails.Port = os.Getenv("DB_PORT")
        response.DBDetails.Database = os.Getenv("DB_NAME")
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(response)
}

func main() {
    startTime := time.Now()
    log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

    // Load environment variables first
    if err := config.LoadEnv(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }

    port := config.Port()

    // Initialize PostgreSQL database with retries
    log.Println("Initializing PostgreSQL database...")
    if err := config.InitDBWithRetry(5); err != nil {
        log.Fatalf("Failed to initialize PostgreSQL: %v", err)
    }
    log.Println("PostgreSQL database initialized successfully")
    defer config.CloseDB()

    config.InitCache()

    // Load the route network and publish the initial snapshot
    ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
    count, err := handlers.LoadNetwork(ctx)
    cancel()
    if err != nil {
        log.Fatalf("Failed to load route network: %v", err)
    }
    log.Printf("Route network loaded: %d routes from %s", count, config.RouteSource())

    r := mux.NewRouter()

    corsHandler := cors.New(cors.Options{
        AllowedOrigins: config.AllowedOrigins(),
        AllowedMethods: []string{
            "GET", "POST", "PUT", "DELETE", "OPTIONS",
        },
        AllowedHeaders: []string{
            "Accept",
            "Authorization",
            "Content-Type",
            "X-Requested-With",
            "Origin",
        },
        ExposedHeaders: []string{
            "Content-Length",
            "Content-Type",
        },
        AllowCredentials: false,
        MaxAge:           86400,
    })

    // Apply middlewares in correct order
    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)

    // API routes
    api := r.PathPrefix("/api/v1").Subrouter()
    registerRoutes(api)
    log.Println("Routes registered successfully")

    // Static frontend assets
    r.PathPrefix("/").Handler(http.FileServer(http.Dir(config.StaticDir())))

    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + port,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    serverErrors := make(chan error, 1)

    go func() {
        log.Printf("Starting server on port %s...", port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Printf("Server error: %v", err)
            serverErrors <- err
        }
    }()

    log.Printf("Server is running at http://localhost:%s", port)
    log.Printf("Search endpoint: http://localhost:%s/api/v1/connections", port)

    // Handle graceful shutdown
    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error received: %v", err)
    }

    log.Println("Shutting down server...")
    shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer shutdownCancel()

    if err := srv.Shutdown(shutdownCtx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    } else {
        log.Println("Server shutdown completed successfully")
    }
}

func registerRoutes(api *mux.Router) {
    // Itinerary search
    api.HandleFunc("/connections", handlers.GetConnections).Methods("GET", "OPTIONS")

    // Network routes
    api.HandleFunc("/routes", handlers.GetRoutes).Methods("GET")
    api.HandleFunc("/cities/suggest", handlers.GetCitySuggestions).Methods("GET")
    api.HandleFunc("/admin/reload", handlers.ReloadRoutes).Methods("POST")

    // Bookings
    api.HandleFunc("/bookings", handlers.CreateBooking).Methods("POST", "OPTIONS")
    api.HandleFunc("/bookings/{reference}", handlers.GetBooking).Methods("GET")

    // Health check
    api.HandleFunc("/health", healthCheck).Methods("GET")
}
