package timetable

import (
    "sort"
    "strings"
)

// Itinerary is the presentation view of one segment chain. Built fresh per
// search response; booking persistence lives elsewhere.
type Itinerary struct {
    ID                   string       `json:"id"`
    Segments             SegmentChain `json:"segments"`
    TotalDurationMinutes int          `json:"total_duration_minutes"`
    TotalPrice           PriceTotal   `json:"total_price"`
    TransferTimes        []int        `json:"transfer_times"`
}

type PriceTotal struct {
    First  float64 `json:"first"`
    Second float64 `json:"second"`
}

// Sort keys accepted by SortItineraries.
const (
    SortByDuration = "duration"
    SortByPrice    = "price"
    SortByDepart   = "depart"
)

// ChainItinerary aggregates a segment chain into an itinerary: route ids
// joined as a display key, total duration including layovers, per-class
// price sums and the ordered transfer gaps.
func ChainItinerary(chain SegmentChain) *Itinerary {
    it := &Itinerary{
        Segments:      chain,
        TransferTimes: []int{},
    }
    if len(chain) == 0 {
        return it
    }

    ids := make([]string, len(chain))
    for i, leg := range chain {
        ids[i] = leg.RouteID
        it.TotalDurationMinutes += SegmentMinutes(leg)
        it.TotalPrice.First += leg.PriceFirst
        it.TotalPrice.Second += leg.PriceSecond
        if i > 0 {
            gap := TransferGap(chain[i-1], leg)
            it.TotalDurationMinutes += gap
            it.TransferTimes = append(it.TransferTimes, gap)
        }
    }
    it.ID = strings.Join(ids, "+")

    return it
}

// ChainItineraries aggregates every chain of a search result.
func ChainItineraries(chains []SegmentChain) []*Itinerary {
    itineraries := make([]*Itinerary, len(chains))
    for i, chain := range chains {
        itineraries[i] = ChainItinerary(chain)
    }
    return itineraries
}

// SortItineraries returns a reordered copy. "duration" sorts by ascending
// total minutes, "price" by ascending second-class total, "depart" by the
// first leg's departure string (valid because times are zero-padded HH:MM).
// An unrecognized key leaves the original order.
func SortItineraries(itineraries []*Itinerary, key string) []*Itinerary {
    sorted := make([]*Itinerary, len(itineraries))
    copy(sorted, itineraries)

    switch key {
    case SortByDuration:
        sort.SliceStable(sorted, func(i, j int) bool {
            return sorted[i].TotalDurationMinutes < sorted[j].TotalDurationMinutes
        })
    case SortByPrice:
        sort.SliceStable(sorted, func(i, j int) bool {
            return sorted[i].TotalPrice.Second < sorted[j].TotalPrice.Second
        })
    case SortByDepart:
        sort.SliceStable(sorted, func(i, j int) bool {
            return firstDeparture(sorted[i]) < firstDeparture(sorted[j])
        })
    }

    return sorted
}

func firstDeparture(it *Itinerary) string {
    if len(it.Segments) == 0 {
        return ""
    }
    return it.Segments[0].DepartTime
}
