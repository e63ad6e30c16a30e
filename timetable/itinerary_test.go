package timetable

import (
    "reflect"
    "testing"
)

func pricedRoute(id, from, to, depart, arrive string, first, second float64, days ...Weekday) *Route {
    r := testRoute(id, from, to, depart, arrive, days...)
    r.PriceFirst = first
    r.PriceSecond = second
    return r
}

func TestChainItinerary(t *testing.T) {
    r1 := pricedRoute("R1", "Paris", "Lyon", "08:00", "10:00", 50, 30, Monday, Tuesday)
    r2 := pricedRoute("R2", "Lyon", "Milan", "10:30", "14:00", 60, 40, Monday, Tuesday)

    it := ChainItinerary(SegmentChain{r1, r2})

    if it.ID != "R1+R2" {
        t.Errorf("ID = %q, expected R1+R2", it.ID)
    }
    if it.TotalDurationMinutes != 360 {
        t.Errorf("TotalDurationMinutes = %d, expected 360", it.TotalDurationMinutes)
    }
    if it.TotalPrice.First != 110 || it.TotalPrice.Second != 70 {
        t.Errorf("TotalPrice = %+v, expected 110/70", it.TotalPrice)
    }
    if !reflect.DeepEqual(it.TransferTimes, []int{30}) {
        t.Errorf("TransferTimes = %v, expected [30]", it.TransferTimes)
    }
}

func TestChainItineraryOvernightLayover(t *testing.T) {
    r1 := pricedRoute("N1", "Wien", "Praha", "20:00", "23:50", 40, 25, Friday)
    r2 := pricedRoute("N2", "Praha", "Berlin", "00:05", "04:05", 45, 30, Saturday)

    it := ChainItinerary(SegmentChain{r1, r2})

    // 230 min + 15 min wrap gap + 240 min.
    if it.TotalDurationMinutes != 485 {
        t.Errorf("TotalDurationMinutes = %d, expected 485", it.TotalDurationMinutes)
    }
    if !reflect.DeepEqual(it.TransferTimes, []int{15}) {
        t.Errorf("TransferTimes = %v, expected [15]", it.TransferTimes)
    }
}

func TestChainItineraryDirect(t *testing.T) {
    it := ChainItinerary(SegmentChain{pricedRoute("R1", "Paris", "Lyon", "23:30", "00:15", 50, 30, Monday)})
    if it.TotalDurationMinutes != 45 {
        t.Errorf("TotalDurationMinutes = %d, expected 45 (midnight wrap)", it.TotalDurationMinutes)
    }
    if len(it.TransferTimes) != 0 {
        t.Errorf("direct itinerary should have no transfers, got %v", it.TransferTimes)
    }
}

func TestChainItineraryEmpty(t *testing.T) {
    it := ChainItinerary(nil)
    if it.TotalDurationMinutes != 0 || it.ID != "" {
        t.Errorf("empty chain should aggregate to zero, got %+v", it)
    }
    if it.TransferTimes == nil || len(it.TransferTimes) != 0 {
        t.Errorf("empty chain should have an empty transfer list, got %v", it.TransferTimes)
    }
}

func TestSortItineraries(t *testing.T) {
    slow := ChainItinerary(SegmentChain{pricedRoute("S", "A", "B", "08:00", "14:00", 30, 20)})
    fast := ChainItinerary(SegmentChain{pricedRoute("F", "A", "B", "09:00", "11:00", 90, 60)})
    cheap := ChainItinerary(SegmentChain{pricedRoute("C", "A", "B", "07:00", "12:30", 25, 10)})
    input := []*Itinerary{slow, fast, cheap}

    byDuration := SortItineraries(input, SortByDuration)
    if byDuration[0] != fast || byDuration[2] != slow {
        t.Errorf("duration order wrong: %v", ids(byDuration))
    }

    byPrice := SortItineraries(input, SortByPrice)
    if byPrice[0] != cheap || byPrice[2] != fast {
        t.Errorf("price order wrong: %v", ids(byPrice))
    }

    byDepart := SortItineraries(input, SortByDepart)
    if byDepart[0] != cheap || byDepart[1] != slow || byDepart[2] != fast {
        t.Errorf("depart order wrong: %v", ids(byDepart))
    }

    // Unknown key preserves input order and does not mutate the input.
    unchanged := SortItineraries(input, "comfort")
    if !reflect.DeepEqual(ids(unchanged), ids(input)) {
        t.Errorf("unknown key reordered: %v", ids(unchanged))
    }
    if input[0] != slow || input[1] != fast || input[2] != cheap {
        t.Errorf("input mutated by sort: %v", ids(input))
    }
}

func TestSortItinerariesStable(t *testing.T) {
    a := ChainItinerary(SegmentChain{pricedRoute("A", "X", "Y", "08:00", "10:00", 50, 30)})
    b := ChainItinerary(SegmentChain{pricedRoute("B", "X", "Y", "09:00", "11:00", 50, 30)})
    sorted := SortItineraries([]*Itinerary{a, b}, SortByPrice)
    if sorted[0] != a || sorted[1] != b {
        t.Errorf("equal keys reordered: %v", ids(sorted))
    }
}

func ids(itineraries []*Itinerary) []string {
    out := make([]string, len(itineraries))
    for i, it := range itineraries {
        out[i] = it.ID
    }
    return out
}
