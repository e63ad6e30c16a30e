package handlers

import (
    "context"
    "net/http"
    "sort"
    "strings"
    "time"

    "railbook/config"
    "railbook/ingest"
    "railbook/timetable"
)

const maxSuggestions = 10

// GetRoutes handles GET /routes, listing the loaded network.
func GetRoutes(w http.ResponseWriter, r *http.Request) {
    routes := timetable.Current().Routes()
    sendJSONResponse(w, http.StatusOK, map[string]interface{}{
        "count":  len(routes),
        "routes": routes,
    })
}

// GetCitySuggestions handles GET /cities/suggest?q=, matching departure
// cities of the loaded network by substring.
func GetCitySuggestions(w http.ResponseWriter, r *http.Request) {
    query := timetable.NormalizeKey(r.URL.Query().Get("q"))
    if query == "" {
        sendErrorResponse(w, "Search term is required", http.StatusBadRequest)
        return
    }

    cacheKey := config.GetCacheKey("cities", query)
    if cached, found := config.SuggestionCache.Get(cacheKey); found {
        sendJSONResponse(w, http.StatusOK, cached)
        return
    }

    var matches []string
    for _, city := range timetable.Current().Cities() {
        if strings.Contains(city, query) {
            matches = append(matches, city)
        }
    }
    sort.Strings(matches)
    if len(matches) > maxSuggestions {
        matches = matches[:maxSuggestions]
    }
    if matches == nil {
        matches = []string{}
    }

    response := map[string]interface{}{
        "query":  query,
        "cities": matches,
    }
    config.SuggestionCache.SetDefault(cacheKey, response)
    sendJSONResponse(w, http.StatusOK, response)
}

// LoadNetwork runs ingestion from the configured source and publishes the
// resulting snapshot, flushing response caches so no search can mix old and
// new networks.
func LoadNetwork(ctx context.Context) (int, error) {
    var (
        routes []*timetable.Route
        err    error
    )

    switch config.RouteSource() {
    case "db":
        routes, err = ingest.LoadRoutesDB(ctx, config.DB)
    default:
        routes, err = ingest.LoadRoutesCSV(config.RoutesCSVPath())
    }
    if err != nil {
        return 0, err
    }

    timetable.Publish(timetable.Build(routes))
    config.ClearAllCaches()
    return len(routes), nil
}

// ReloadRoutes handles POST /admin/reload, re-running ingestion and
// atomically swapping in the new snapshot.
func ReloadRoutes(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
    defer cancel()

    count, err := LoadNetwork(ctx)
    if err != nil {
        sendErrorResponse(w, "Failed to reload routes: "+err.Error(), http.StatusInternalServerError)
        return
    }

    sendJSONResponse(w, http.StatusOK, map[string]interface{}{
        "status": "reloaded",
        "routes": count,
        "source": config.RouteSource(),
    })
}
