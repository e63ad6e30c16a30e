package timetable

import "strings"

const (
    // minTransferMinutes disqualifies any connection tighter than this.
    minTransferMinutes = 10

    // Layover tolerance depends on when the incoming leg arrives: a daytime
    // arrival (06:00-21:59) tolerates up to two hours of waiting, a night
    // arrival only half an hour.
    dayWindowStartHour = 6
    dayWindowEndHour   = 21
    maxDayLayover      = 120
    maxNightLayover    = 30
)

// cityMatches reports whether a route's city field matches the queried city,
// by substring containment on the normalized strings. Deliberately
// permissive: "pari" matches "Paris", and also "Parma"-style near misses.
func cityMatches(routeCity, query string) bool {
    return strings.Contains(NormalizeKey(routeCity), NormalizeKey(query))
}

// departures resolves the candidate legs leaving a city: the exact
// normalized bucket first, else a substring scan over the whole collection.
func (s *Snapshot) departures(city string) []*Route {
    if bucket := s.Lookup(city); len(bucket) > 0 {
        return bucket
    }
    var matches []*Route
    for _, r := range s.routes {
        if cityMatches(r.From, city) {
            matches = append(matches, r)
        }
    }
    return matches
}

// runsOn applies the optional day filter. A nil filter accepts every route,
// including routes whose calendar could not be parsed at load time.
func runsOn(r *Route, day *Weekday) bool {
    if day == nil {
        return true
    }
    return containsDay(r.Days, *day)
}

// feasibleLayover checks the transfer gap against both the minimum
// connection time and the arrival-window tolerance.
func feasibleLayover(prev, next *Route) bool {
    gap := TransferGap(prev, next)
    if gap < minTransferMinutes {
        return false
    }
    arriveHour := TimeToMinutes(prev.ArriveTime) / 60
    if arriveHour >= dayWindowStartHour && arriveHour <= dayWindowEndHour {
        return gap <= maxDayLayover
    }
    return gap <= maxNightLayover
}

// Direct finds single-leg connections between two cities.
func (s *Snapshot) Direct(from, to string, day *Weekday) []SegmentChain {
    var chains []SegmentChain
    for _, r := range s.departures(from) {
        if cityMatches(r.ArriveCity, to) && runsOn(r, day) {
            chains = append(chains, SegmentChain{r})
        }
    }
    return chains
}

// OneStop finds two-leg connections with a single transfer satisfying the
// minimum connection time and layover tolerance.
func (s *Snapshot) OneStop(from, to string, day *Weekday) []SegmentChain {
    var chains []SegmentChain
    for _, first := range s.departures(from) {
        if !runsOn(first, day) {
            continue
        }
        for _, second := range s.departures(first.ArriveCity) {
            if !cityMatches(second.ArriveCity, to) || !runsOn(second, day) {
                continue
            }
            if !feasibleLayover(first, second) {
                continue
            }
            chains = append(chains, SegmentChain{first, second})
        }
    }
    return chains
}

// TwoStop finds three-leg connections; both transfers are subject to the
// same connection rules.
func (s *Snapshot) TwoStop(from, to string, day *Weekday) []SegmentChain {
    var chains []SegmentChain
    for _, first := range s.departures(from) {
        if !runsOn(first, day) {
            continue
        }
        for _, second := range s.departures(first.ArriveCity) {
            if !runsOn(second, day) || !feasibleLayover(first, second) {
                continue
            }
            for _, third := range s.departures(second.ArriveCity) {
                if !cityMatches(third.ArriveCity, to) || !runsOn(third, day) {
                    continue
                }
                if !feasibleLayover(second, third) {
                    continue
                }
                chains = append(chains, SegmentChain{first, second, third})
            }
        }
    }
    return chains
}
