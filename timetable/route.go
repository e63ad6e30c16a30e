package timetable

// Route is one scheduled service leg, created at load time and immutable for
// the lifetime of the snapshot that holds it. The loader guarantees From,
// ArriveCity, DepartTime and ArriveTime are non-empty; nothing here
// revalidates them.
type Route struct {
    RouteID     string    `json:"route_id"`
    From        string    `json:"from"`
    ArriveCity  string    `json:"arrive_city"`
    DepartTime  string    `json:"depart_time"`
    ArriveTime  string    `json:"arrive_time"`
    TrainType   string    `json:"train_type,omitempty"`
    Days        []Weekday `json:"days"`
    PriceFirst  float64   `json:"price_first"`
    PriceSecond float64   `json:"price_second"`
}

// SegmentChain is an ordered sequence of one to three legs where each leg
// departs from the city the previous one arrived in. Chains are transient:
// produced and consumed within a single search call.
type SegmentChain []*Route
