package ingest

import (
    "context"
    "database/sql"
    "fmt"
    "log"

    "railbook/timetable"
)

// LoadRoutesDB reads the route network from the routes table, for
// deployments that import the CSV into Postgres instead of shipping the
// file. Same columns, same row conversion as the CSV loader.
func LoadRoutesDB(ctx context.Context, db *sql.DB) ([]*timetable.Route, error) {
    rows, err := db.QueryContext(ctx, `
        SELECT route_id, from_city, to_city, depart_time, arrive_time,
               COALESCE(train_type, ''), COALESCE(days, ''),
               COALESCE(first_class_price, ''), COALESCE(second_class_price, '')
        FROM routes
        ORDER BY id`)
    if err != nil {
        return nil, fmt.Errorf("error querying routes table: %v", err)
    }
    defer rows.Close()

    var routes []*timetable.Route
    skipped := 0
    for rows.Next() {
        row := &routeRow{}
        if err := rows.Scan(&row.RouteID, &row.From, &row.To, &row.Depart, &row.Arrive,
            &row.TrainType, &row.Days, &row.PriceFirst, &row.PriceSecond); err != nil {
            return nil, fmt.Errorf("error scanning route row: %v", err)
        }
        route, ok := buildRoute(row)
        if !ok {
            skipped++
            continue
        }
        routes = append(routes, route)
    }
    if err := rows.Err(); err != nil {
        return nil, fmt.Errorf("error reading routes table: %v", err)
    }

    log.Printf("Loaded %d routes from database (%d rows skipped)", len(routes), skipped)
    return routes, nil
}
