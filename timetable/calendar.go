package timetable

import (
    "encoding/json"
    "fmt"
    "strings"
    "unicode"

    "golang.org/x/text/runes"
    "golang.org/x/text/transform"
    "golang.org/x/text/unicode/norm"
)

// Weekday is one of the seven canonical service days, Monday first.
type Weekday int

const (
    Monday Weekday = iota
    Tuesday
    Wednesday
    Thursday
    Friday
    Saturday
    Sunday
)

var weekdayCodes = [7]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

func (d Weekday) Code() string {
    if d < Monday || d > Sunday {
        return ""
    }
    return weekdayCodes[d]
}

func (d Weekday) String() string {
    return d.Code()
}

// MarshalJSON emits the canonical three-letter code.
func (d Weekday) MarshalJSON() ([]byte, error) {
    return []byte(`"` + d.Code() + `"`), nil
}

// UnmarshalJSON accepts any recognized day spelling, so the canonical codes
// emitted by MarshalJSON round-trip.
func (d *Weekday) UnmarshalJSON(data []byte) error {
    var name string
    if err := json.Unmarshal(data, &name); err != nil {
        return err
    }
    day, ok := ResolveDay(name)
    if !ok {
        return fmt.Errorf("unrecognized weekday %q", name)
    }
    *d = day
    return nil
}

// Static alias table mapping recognized day spellings to their weekday.
// Built once; lookups go through ResolveDay which normalizes first.
var dayAliases = map[string]Weekday{
    "mon": Monday, "monday": Monday,
    "tue": Tuesday, "tues": Tuesday, "tuesday": Tuesday,
    "wed": Wednesday, "weds": Wednesday, "wednesday": Wednesday,
    "thu": Thursday, "thur": Thursday, "thurs": Thursday, "thursday": Thursday,
    "fri": Friday, "friday": Friday,
    "sat": Saturday, "saturday": Saturday,
    "sun": Sunday, "sunday": Sunday,
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey strips diacritics, trims and lower-cases a free-text name so
// that "São Paulo ", "sao paulo" and "SAO PAULO" all index the same bucket.
func NormalizeKey(s string) string {
    stripped, _, err := transform.String(diacriticStripper, s)
    if err != nil {
        stripped = s
    }
    return strings.ToLower(strings.TrimSpace(stripped))
}

// ResolveDay maps a single day name or abbreviation to its weekday.
func ResolveDay(token string) (Weekday, bool) {
    d, ok := dayAliases[NormalizeKey(token)]
    return d, ok
}

// ExpandDays parses a free-text days-of-operation field into the set of
// weekdays the service runs. Recognized forms: "daily"/"all", comma-separated
// day names or abbreviations, and hyphenated ranges which wrap across the
// week boundary ("Fri-Mon" covers FRI SAT SUN MON). Unrecognized tokens are
// dropped without error; an empty input yields an empty set.
func ExpandDays(text string) []Weekday {
    normalized := NormalizeKey(text)
    if normalized == "" {
        return nil
    }

    if normalized == "daily" || normalized == "all" {
        return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
    }

    var days []Weekday
    seen := [7]bool{}
    add := func(d Weekday) {
        if !seen[d] {
            seen[d] = true
            days = append(days, d)
        }
    }

    for _, token := range strings.Split(normalized, ",") {
        token = strings.TrimSpace(token)
        if token == "" {
            continue
        }

        if start, end, ok := splitRange(token); ok {
            // Walk forward from the range start, wrapping modulo 7, until
            // the end day is included.
            for d := start; ; d = (d + 1) % 7 {
                add(d)
                if d == end {
                    break
                }
            }
            continue
        }

        if d, ok := dayAliases[token]; ok {
            add(d)
        }
    }

    return days
}

// splitRange resolves a "mon-fri" style token. Both ends must be recognized
// day names, otherwise the whole token is dropped.
func splitRange(token string) (Weekday, Weekday, bool) {
    parts := strings.SplitN(token, "-", 2)
    if len(parts) != 2 {
        return 0, 0, false
    }
    start, ok := dayAliases[strings.TrimSpace(parts[0])]
    if !ok {
        return 0, 0, false
    }
    end, ok := dayAliases[strings.TrimSpace(parts[1])]
    if !ok {
        return 0, 0, false
    }
    return start, end, true
}

func containsDay(days []Weekday, d Weekday) bool {
    for _, have := range days {
        if have == d {
            return true
        }
    }
    return false
}
