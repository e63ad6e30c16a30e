package config

import (
    "fmt"
    "time"

    "github.com/patrickmn/go-cache"
)

var (
    // Cache instances for different data types
    SearchCache     *cache.Cache
    SuggestionCache *cache.Cache
)

const (
    // Cache durations
    searchCacheDuration     = 10 * time.Minute
    suggestionCacheDuration = 1 * time.Hour

    // Cleanup intervals
    searchCleanupInterval     = 30 * time.Minute
    suggestionCleanupInterval = 2 * time.Hour
)

func InitCache() {
    SearchCache = cache.New(searchCacheDuration, searchCleanupInterval)
    SuggestionCache = cache.New(suggestionCacheDuration, suggestionCleanupInterval)
}

// ClearAllCaches flushes every cache. Called when a new route snapshot is
// published so stale itineraries cannot be served from the old network.
func ClearAllCaches() {
    SearchCache.Flush()
    SuggestionCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}
