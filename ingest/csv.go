package ingest

import (
    "encoding/csv"
    "fmt"
    "io"
    "log"
    "os"

    "github.com/gocarina/gocsv"

    "railbook/timetable"
    "railbook/utils"
)

// routeRow mirrors one line of the route network CSV. Everything is read as
// a string; interpretation (calendar expansion, fare parsing) happens in
// buildRoute so the DB loader can share it.
type routeRow struct {
    RouteID     string `csv:"route_id"`
    From        string `csv:"from"`
    To          string `csv:"to"`
    Depart      string `csv:"depart"`
    Arrive      string `csv:"arrive"`
    TrainType   string `csv:"train_type"`
    Days        string `csv:"days"`
    PriceFirst  string `csv:"first_class_price"`
    PriceSecond string `csv:"second_class_price"`
}

// LoadRoutesCSV reads the route network from a CSV file. Rows missing a
// city or clock time are skipped with a log line; this loader is the
// validation boundary, the search core never rechecks these fields.
func LoadRoutesCSV(path string) ([]*timetable.Route, error) {
    file, err := os.Open(path)
    if err != nil {
        return nil, fmt.Errorf("error opening routes file: %v", err)
    }
    defer file.Close()

    return ParseRoutesCSV(file)
}

// Tolerate rows with missing trailing columns. gocsv's reader factory is a
// package-level global, so it is configured once here rather than per parse,
// which would race with concurrent reloads.
func init() {
    gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
        r := csv.NewReader(in)
        r.FieldsPerRecord = -1
        return r
    })
}

// ParseRoutesCSV decodes route rows from a reader.
func ParseRoutesCSV(reader io.Reader) ([]*timetable.Route, error) {
    var rows []*routeRow
    if err := gocsv.Unmarshal(reader, &rows); err != nil {
        return nil, fmt.Errorf("error parsing routes csv: %v", err)
    }

    routes := make([]*timetable.Route, 0, len(rows))
    for i, row := range rows {
        route, ok := buildRoute(row)
        if !ok {
            log.Printf("Skipping invalid route row %d (route_id=%q)", i+1, row.RouteID)
            continue
        }
        routes = append(routes, route)
    }

    log.Printf("Loaded %d routes from CSV (%d rows skipped)", len(routes), len(rows)-len(routes))
    return routes, nil
}

// buildRoute converts a raw row into an immutable route, expanding the
// days-of-operation text into canonical weekdays and parsing fares.
func buildRoute(row *routeRow) (*timetable.Route, bool) {
    if row.From == "" || row.To == "" || row.Depart == "" || row.Arrive == "" {
        return nil, false
    }

    return &timetable.Route{
        RouteID:     row.RouteID,
        From:        row.From,
        ArriveCity:  row.To,
        DepartTime:  row.Depart,
        ArriveTime:  row.Arrive,
        TrainType:   row.TrainType,
        Days:        timetable.ExpandDays(row.Days),
        PriceFirst:  utils.ParsePrice(row.PriceFirst),
        PriceSecond: utils.ParsePrice(row.PriceSecond),
    }, true
}
