package timetable

import (
    "strconv"
    "strings"
)

const minutesPerDay = 24 * 60

// TimeToMinutes converts a zero-padded "HH:MM" clock time to minutes since
// midnight. Malformed input yields 0 rather than an error; routes with bad
// times degrade to zero-length segments instead of failing the search.
func TimeToMinutes(hhmm string) int {
    parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
    if len(parts) != 2 {
        return 0
    }
    hours, err := strconv.Atoi(parts[0])
    if err != nil {
        return 0
    }
    minutes, err := strconv.Atoi(parts[1])
    if err != nil {
        return 0
    }
    return hours*60 + minutes
}

// SegmentMinutes is the running time of a single leg. An arrival clock time
// earlier than the departure is treated as crossing midnight.
func SegmentMinutes(r *Route) int {
    duration := TimeToMinutes(r.ArriveTime) - TimeToMinutes(r.DepartTime)
    if duration < 0 {
        duration += minutesPerDay
    }
    return duration
}

// TransferGap is the layover between one leg's arrival and the next leg's
// departure. A negative gap means the connecting service departs the
// following calendar day, so a day is added. The service calendar is never
// consulted here; wraparound is assumed whenever the clock runs backwards.
func TransferGap(prev, next *Route) int {
    gap := TimeToMinutes(next.DepartTime) - TimeToMinutes(prev.ArriveTime)
    if gap < 0 {
        gap += minutesPerDay
    }
    return gap
}
