package config

import (
    "log"
    "os"
    "strconv"
    "strings"

    "github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file if one is present.
// A missing file is not an error; deployments set real environment variables.
func LoadEnv() error {
    if err := godotenv.Load(); err != nil {
        if os.IsNotExist(err) {
            return nil
        }
        return err
    }
    log.Printf("Loaded environment variables from .env")
    return nil
}

// Server configuration
func Port() string {
    return GetEnvWithDefault("PORT", "8080")
}

// RouteSource selects where the network is ingested from: "csv" or "db".
func RouteSource() string {
    return strings.ToLower(GetEnvWithDefault("ROUTE_SOURCE", "csv"))
}

func RoutesCSVPath() string {
    return GetEnvWithDefault("ROUTES_CSV", "data/routes.csv")
}

func StaticDir() string {
    return GetEnvWithDefault("STATIC_DIR", "static")
}

// AllowedOrigins returns the CORS allowlist, comma-separated in the
// ALLOWED_ORIGINS variable.
func AllowedOrigins() []string {
    raw := GetEnvWithDefault("ALLOWED_ORIGINS",
        "http://localhost:3000,http://localhost:5173,http://localhost:8080")
    parts := strings.Split(raw, ",")
    origins := make([]string, 0, len(parts))
    for _, p := range parts {
        if p = strings.TrimSpace(p); p != "" {
            origins = append(origins, p)
        }
    }
    return origins
}

// Helper functions
func GetEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if intValue, err := strconv.Atoi(value); err == nil {
            return intValue
        }
    }
    return defaultValue
}

func GetEnvAsBool(key string, defaultValue bool) bool {
    if value := os.Getenv(key); value != "" {
        if boolValue, err := strconv.ParseBool(value); err == nil {
            return boolValue
        }
    }
    return defaultValue
}
