package timetable

import "testing"

func day(d Weekday) *Weekday { return &d }

func testRoute(id, from, to, depart, arrive string, days ...Weekday) *Route {
    return &Route{
        RouteID:    id,
        From:       from,
        ArriveCity: to,
        DepartTime: depart,
        ArriveTime: arrive,
        Days:       days,
    }
}

func TestDirect(t *testing.T) {
    s := Build([]*Route{
        testRoute("R1", "Paris", "Lyon", "08:00", "10:00", Monday, Tuesday),
        testRoute("R2", "Paris", "Milan", "09:00", "16:00", Wednesday),
        testRoute("R3", "Lyon", "Milan", "10:30", "14:00", Monday),
    })

    chains := s.Direct("Paris", "Lyon", nil)
    if len(chains) != 1 || chains[0][0].RouteID != "R1" {
        t.Fatalf("expected R1, got %v", chains)
    }

    // Day filter excludes routes not running that day.
    if got := s.Direct("Paris", "Milan", day(Monday)); len(got) != 0 {
        t.Fatalf("expected no monday direct to milan, got %v", got)
    }
    if got := s.Direct("Paris", "Milan", day(Wednesday)); len(got) != 1 {
        t.Fatalf("expected wednesday direct to milan, got %v", got)
    }

    // No filter accepts any calendar.
    if got := s.Direct("Paris", "Milan", nil); len(got) != 1 {
        t.Fatalf("expected unfiltered direct to milan, got %v", got)
    }
}

func TestDirectSubstringFallback(t *testing.T) {
    s := Build([]*Route{
        testRoute("R1", "Paris Gare de Lyon", "Lyon", "08:00", "10:00", Monday),
    })

    // "Pari" hits no exact bucket; the substring scan finds the route, and
    // the arrival match is containment too.
    chains := s.Direct("Pari", "Lyo", nil)
    if len(chains) != 1 || chains[0][0].RouteID != "R1" {
        t.Fatalf("expected substring fallback to find R1, got %v", chains)
    }

    if got := s.Direct("Berlin", "Lyon", nil); len(got) != 0 {
        t.Fatalf("expected no match for unknown city, got %v", got)
    }
}

func TestDirectDiacriticInsensitive(t *testing.T) {
    s := Build([]*Route{
        testRoute("R1", "Zürich", "Genève", "07:00", "09:45", Monday),
    })
    if got := s.Direct("zurich", "geneve", nil); len(got) != 1 {
        t.Fatalf("expected diacritic-insensitive match, got %v", got)
    }
}

func TestOneStop(t *testing.T) {
    s := Build([]*Route{
        testRoute("R1", "Paris", "Lyon", "08:00", "10:00", Monday, Tuesday),
        testRoute("R2", "Lyon", "Milan", "10:30", "14:00", Monday, Tuesday),
        testRoute("R3", "Lyon", "Milan", "10:05", "13:30", Monday), // 5 min gap, too tight
        testRoute("R4", "Lyon", "Milan", "13:00", "17:00", Monday), // 180 min day layover, too long
    })

    chains := s.OneStop("Paris", "Milan", day(Monday))
    if len(chains) != 1 {
        t.Fatalf("expected exactly one feasible one-stop chain, got %d", len(chains))
    }
    if chains[0][0].RouteID != "R1" || chains[0][1].RouteID != "R2" {
        t.Fatalf("unexpected chain %v", chains[0])
    }

    for _, chain := range chains {
        for i := 1; i < len(chain); i++ {
            if gap := TransferGap(chain[i-1], chain[i]); gap < minTransferMinutes {
                t.Errorf("chain %v has gap %d below minimum", chain, gap)
            }
        }
    }

    // Tuesday excludes R3/R4 by calendar and keeps R1+R2.
    if got := s.OneStop("Paris", "Milan", day(Tuesday)); len(got) != 1 {
        t.Fatalf("expected one tuesday chain, got %d", len(got))
    }
}

func TestOneStopNightLayover(t *testing.T) {
    s := Build([]*Route{
        testRoute("R1", "Wien", "Praha", "19:00", "23:00", Friday),
        testRoute("R2", "Praha", "Berlin", "23:20", "04:10", Friday), // 20 min night gap, fine
        testRoute("R3", "Praha", "Berlin", "00:10", "05:00", Friday), // 70 min night gap, too long
    })

    chains := s.OneStop("Wien", "Berlin", day(Friday))
    if len(chains) != 1 || chains[0][1].RouteID != "R2" {
        t.Fatalf("expected only the tight night connection, got %v", chains)
    }
}

func TestTwoStop(t *testing.T) {
    s := Build([]*Route{
        testRoute("R1", "Paris", "Lyon", "08:00", "10:00", Monday),
        testRoute("R2", "Lyon", "Torino", "10:30", "13:00", Monday),
        testRoute("R3", "Torino", "Roma", "13:45", "18:00", Monday),
        testRoute("R4", "Torino", "Roma", "13:50", "18:10", Monday),
    })

    chains := s.TwoStop("Paris", "Roma", day(Monday))
    if len(chains) != 2 {
        t.Fatalf("expected two two-stop chains, got %d", len(chains))
    }
    for _, chain := range chains {
        if len(chain) != 3 {
            t.Fatalf("expected three legs, got %d", len(chain))
        }
        for i := 1; i < len(chain); i++ {
            if gap := TransferGap(chain[i-1], chain[i]); gap < minTransferMinutes {
                t.Errorf("chain gap %d below minimum", gap)
            }
        }
    }
}

func TestLookupEmpty(t *testing.T) {
    s := Build(nil)
    if got := s.Lookup(""); len(got) != 0 {
        t.Fatalf("empty key should yield empty list, got %v", got)
    }
    if got := s.Lookup("nowhere"); len(got) != 0 {
        t.Fatalf("unknown key should yield empty list, got %v", got)
    }
}

func TestPublishReplacesWholesale(t *testing.T) {
    old := Build([]*Route{testRoute("R1", "Paris", "Lyon", "08:00", "10:00", Monday)})
    Publish(old)
    if got := Current().Direct("Paris", "Lyon", nil); len(got) != 1 {
        t.Fatalf("expected route in old snapshot, got %v", got)
    }

    Publish(Build([]*Route{testRoute("R9", "Madrid", "Sevilla", "09:00", "11:30", Monday)}))
    if got := Current().Direct("Paris", "Lyon", nil); len(got) != 0 {
        t.Fatalf("old routes leaked into new snapshot: %v", got)
    }
    if got := Current().Direct("Madrid", "Sevilla", nil); len(got) != 1 {
        t.Fatalf("expected route in new snapshot, got %v", got)
    }
}
