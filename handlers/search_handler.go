package handlers

import (
    "net/http"
    "strings"

    "railbook/config"
    "railbook/timetable"
)

// ConnectionsResponse is the search endpoint payload.
type ConnectionsResponse struct {
    From        string                 `json:"from"`
    To          string                 `json:"to"`
    Day         string                 `json:"day,omitempty"`
    Sort        string                 `json:"sort"`
    Transfers   int                    `json:"transfers"`
    Itineraries []*timetable.Itinerary `json:"itineraries"`
}

// GetConnections handles GET /connections?from=&to=&day=&sort=.
// Fewest transfers win: one-stop chains are only searched when no direct
// route exists, two-stop chains only when one-stop found nothing either.
func GetConnections(w http.ResponseWriter, r *http.Request) {
    from := strings.TrimSpace(r.URL.Query().Get("from"))
    to := strings.TrimSpace(r.URL.Query().Get("to"))
    if from == "" || to == "" {
        sendErrorResponse(w, "Both 'from' and 'to' query parameters are required", http.StatusBadRequest)
        return
    }

    sortKey := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("sort")))
    if sortKey == "" {
        sortKey = timetable.SortByDuration
    }

    // An unrecognized day string behaves like no filter, mirroring the
    // calendar expander's silent-drop policy.
    var day *timetable.Weekday
    dayParam := r.URL.Query().Get("day")
    if d, ok := timetable.ResolveDay(dayParam); ok {
        day = &d
    }

    cacheKey := config.GetCacheKey("connections", timetable.NormalizeKey(from),
        timetable.NormalizeKey(to), dayCode(day), sortKey)
    if cached, found := config.SearchCache.Get(cacheKey); found {
        sendJSONResponse(w, http.StatusOK, cached)
        return
    }

    snapshot := timetable.Current()

    transfers := 0
    chains := snapshot.Direct(from, to, day)
    if len(chains) == 0 {
        transfers = 1
        chains = snapshot.OneStop(from, to, day)
    }
    if len(chains) == 0 {
        transfers = 2
        chains = snapshot.TwoStop(from, to, day)
    }
    if len(chains) == 0 {
        transfers = 0
    }

    itineraries := timetable.SortItineraries(timetable.ChainItineraries(chains), sortKey)

    response := ConnectionsResponse{
        From:        from,
        To:          to,
        Day:         dayCode(day),
        Sort:        sortKey,
        Transfers:   transfers,
        Itineraries: itineraries,
    }

    config.SearchCache.SetDefault(cacheKey, response)
    sendJSONResponse(w, http.StatusOK, response)
}

func dayCode(day *timetable.Weekday) string {
    if day == nil {
        return ""
    }
    return day.Code()
}
