package timetable

import "testing"

func TestTimeToMinutes(t *testing.T) {
    for _, tc := range []struct {
        input    string
        expected int
    }{
        {"00:00", 0},
        {"08:30", 510},
        {"23:59", 1439},
        {" 10:05 ", 605},
        {"", 0},
        {"garbage", 0},
        {"10", 0},
        {"ab:cd", 0},
        {"10:xx", 0},
    } {
        if got := TimeToMinutes(tc.input); got != tc.expected {
            t.Errorf("TimeToMinutes(%q) = %d, expected %d", tc.input, got, tc.expected)
        }
    }
}

func TestSegmentMinutes(t *testing.T) {
    for _, tc := range []struct {
        depart   string
        arrive   string
        expected int
    }{
        {"08:00", "10:00", 120},
        {"23:30", "00:15", 45},
        {"10:00", "10:00", 0},
        {"22:00", "06:00", 480},
    } {
        r := &Route{DepartTime: tc.depart, ArriveTime: tc.arrive}
        if got := SegmentMinutes(r); got != tc.expected {
            t.Errorf("SegmentMinutes(%s->%s) = %d, expected %d", tc.depart, tc.arrive, got, tc.expected)
        }
    }
}

func TestTransferGap(t *testing.T) {
    for _, tc := range []struct {
        arrive   string
        depart   string
        expected int
    }{
        {"10:00", "10:30", 30},
        {"23:50", "00:05", 15},
        {"12:00", "12:00", 0},
        {"18:00", "06:00", 720},
    } {
        prev := &Route{ArriveTime: tc.arrive}
        next := &Route{DepartTime: tc.depart}
        got := TransferGap(prev, next)
        if got != tc.expected {
            t.Errorf("TransferGap(%s, %s) = %d, expected %d", tc.arrive, tc.depart, got, tc.expected)
        }
        if got < 0 {
            t.Errorf("TransferGap(%s, %s) negative", tc.arrive, tc.depart)
        }
    }
}
