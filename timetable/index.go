package timetable

import "sync/atomic"

// Snapshot is an immutable view of the loaded route network: the flat route
// list in insertion order plus buckets keyed by normalized departure city.
// Searches only ever read a snapshot; reloads build a complete replacement
// and publish it wholesale.
type Snapshot struct {
    routes []*Route
    byCity map[string][]*Route
    byID   map[string]*Route
}

// Build groups routes by their normalized departure city, preserving each
// route's relative order within its bucket.
func Build(routes []*Route) *Snapshot {
    s := &Snapshot{
        routes: routes,
        byCity: make(map[string][]*Route),
        byID:   make(map[string]*Route),
    }
    for _, r := range routes {
        key := NormalizeKey(r.From)
        s.byCity[key] = append(s.byCity[key], r)
        if _, taken := s.byID[r.RouteID]; !taken {
            s.byID[r.RouteID] = r
        }
    }
    return s
}

// RouteByID resolves a route identifier, or nil when unknown.
func (s *Snapshot) RouteByID(id string) *Route {
    return s.byID[id]
}

// Lookup returns the routes departing the given city, or an empty list for
// an empty or unknown key. Callers fall back to a substring scan over
// Routes() when the exact bucket is empty.
func (s *Snapshot) Lookup(cityKey string) []*Route {
    return s.byCity[NormalizeKey(cityKey)]
}

// Routes returns the full route collection in insertion order.
func (s *Snapshot) Routes() []*Route {
    return s.routes
}

// Cities returns the normalized departure-city keys of the index.
func (s *Snapshot) Cities() []string {
    cities := make([]string, 0, len(s.byCity))
    for city := range s.byCity {
        cities = append(cities, city)
    }
    return cities
}

// current holds the published snapshot. An atomic pointer swap means an
// in-flight search sees either the fully-old or fully-new network, never a
// partially built index.
var current atomic.Pointer[Snapshot]

func init() {
    current.Store(Build(nil))
}

// Publish atomically replaces the process-wide snapshot.
func Publish(s *Snapshot) {
    current.Store(s)
}

// Current returns the published snapshot.
func Current() *Snapshot {
    return current.Load()
}
