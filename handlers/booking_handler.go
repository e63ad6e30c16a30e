package handlers

import (
    "crypto/rand"
    "database/sql"
    "encoding/hex"
    "encoding/json"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/go-playground/validator/v10"
    "github.com/gorilla/mux"

    "railbook/config"
    "railbook/models"
    "railbook/timetable"
)

var validate = validator.New()

// CreateBooking handles POST /bookings. The request carries the itinerary id
// from a search response plus the travellers; the segment chain is resolved
// against the current snapshot and totals are recomputed server-side.
func CreateBooking(w http.ResponseWriter, r *http.Request) {
    var req models.BookingRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendErrorResponse(w, "Invalid JSON payload", http.StatusBadRequest)
        return
    }

    if err := validate.Struct(req); err != nil {
        sendErrorResponse(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
        return
    }

    class := req.Class
    if class == "" {
        class = "second"
    }

    chain, err := resolveChain(req.ItineraryID)
    if err != nil {
        sendErrorResponse(w, err.Error(), http.StatusBadRequest)
        return
    }

    booking := models.Booking{
        Reference:  newBookingReference(),
        Status:     "confirmed",
        Class:      class,
        Travellers: req.Travellers,
    }

    for i, leg := range chain {
        price := leg.PriceSecond
        if class == "first" {
            price = leg.PriceFirst
        }
        booking.Segments = append(booking.Segments, models.BookingSegment{
            LegOrder:   i + 1,
            RouteID:    leg.RouteID,
            From:       leg.From,
            ArriveCity: leg.ArriveCity,
            DepartTime: leg.DepartTime,
            ArriveTime: leg.ArriveTime,
            TrainType:  leg.TrainType,
            Price:      price,
        })
        booking.TotalPrice += price * float64(len(req.Travellers))
    }

    ctx := r.Context()
    err = config.WithTransaction(ctx, func(tx *sql.Tx) error {
        err := tx.QueryRowContext(ctx, `
            INSERT INTO bookings (reference, status, class, total_price)
            VALUES ($1, $2, $3, $4)
            RETURNING id, created_at`,
            booking.Reference, booking.Status, booking.Class, booking.TotalPrice,
        ).Scan(&booking.ID, &booking.CreatedAt)
        if err != nil {
            return err
        }

        for i := range booking.Segments {
            seg := &booking.Segments[i]
            err = tx.QueryRowContext(ctx, `
                INSERT INTO booking_segments
                    (booking_id, leg_order, route_id, from_city, to_city, depart_time, arrive_time, train_type, price)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                RETURNING id`,
                booking.ID, seg.LegOrder, seg.RouteID, seg.From, seg.ArriveCity,
                seg.DepartTime, seg.ArriveTime, seg.TrainType, seg.Price,
            ).Scan(&seg.ID)
            if err != nil {
                return err
            }
        }

        for i := range booking.Travellers {
            traveller := &booking.Travellers[i]
            err = tx.QueryRowContext(ctx, `
                INSERT INTO travellers (booking_id, first_name, last_name, age, government_id)
                VALUES ($1, $2, $3, $4, $5)
                RETURNING id`,
                booking.ID, traveller.FirstName, traveller.LastName, traveller.Age, traveller.GovernmentID,
            ).Scan(&traveller.ID)
            if err != nil {
                return err
            }

            ticket := models.Ticket{
                TicketNumber: fmt.Sprintf("%s-T%d", booking.Reference, i+1),
                TravellerID:  traveller.ID,
            }
            err = tx.QueryRowContext(ctx, `
                INSERT INTO tickets (booking_id, traveller_id, ticket_number)
                VALUES ($1, $2, $3)
                RETURNING id`,
                booking.ID, traveller.ID, ticket.TicketNumber,
            ).Scan(&ticket.ID)
            if err != nil {
                return err
            }
            booking.Tickets = append(booking.Tickets, ticket)
        }

        return nil
    })
    if err != nil {
        sendErrorResponse(w, "Failed to store booking: "+err.Error(), http.StatusInternalServerError)
        return
    }

    sendJSONResponse(w, http.StatusCreated, booking)
}

// GetBooking handles GET /bookings/{reference}.
func GetBooking(w http.ResponseWriter, r *http.Request) {
    reference := mux.Vars(r)["reference"]

    ctx := r.Context()
    booking := models.Booking{Reference: reference}

    err := config.DB.QueryRowContext(ctx, `
        SELECT id, status, class, total_price, created_at
        FROM bookings WHERE reference = $1`,
        reference,
    ).Scan(&booking.ID, &booking.Status, &booking.Class, &booking.TotalPrice, &booking.CreatedAt)
    if err == sql.ErrNoRows {
        sendErrorResponse(w, "Booking not found", http.StatusNotFound)
        return
    }
    if err != nil {
        sendErrorResponse(w, "Failed to load booking: "+err.Error(), http.StatusInternalServerError)
        return
    }

    segments, err := config.DB.QueryContext(ctx, `
        SELECT id, leg_order, route_id, from_city, to_city, depart_time, arrive_time,
               COALESCE(train_type, ''), price
        FROM booking_segments WHERE booking_id = $1 ORDER BY leg_order`,
        booking.ID)
    if err != nil {
        sendErrorResponse(w, "Failed to load booking segments: "+err.Error(), http.StatusInternalServerError)
        return
    }
    defer segments.Close()
    for segments.Next() {
        var seg models.BookingSegment
        if err := segments.Scan(&seg.ID, &seg.LegOrder, &seg.RouteID, &seg.From, &seg.ArriveCity,
            &seg.DepartTime, &seg.ArriveTime, &seg.TrainType, &seg.Price); err != nil {
            sendErrorResponse(w, "Failed to read booking segments: "+err.Error(), http.StatusInternalServerError)
            return
        }
        booking.Segments = append(booking.Segments, seg)
    }

    travellers, err := config.DB.QueryContext(ctx, `
        SELECT t.id, t.first_name, t.last_name, t.age, t.government_id, k.id, k.ticket_number
        FROM travellers t
        JOIN tickets k ON k.traveller_id = t.id
        WHERE t.booking_id = $1 ORDER BY t.id`,
        booking.ID)
    if err != nil {
        sendErrorResponse(w, "Failed to load travellers: "+err.Error(), http.StatusInternalServerError)
        return
    }
    defer travellers.Close()
    for travellers.Next() {
        var traveller models.Traveller
        var ticket models.Ticket
        if err := travellers.Scan(&traveller.ID, &traveller.FirstName, &traveller.LastName,
            &traveller.Age, &traveller.GovernmentID, &ticket.ID, &ticket.TicketNumber); err != nil {
            sendErrorResponse(w, "Failed to read travellers: "+err.Error(), http.StatusInternalServerError)
            return
        }
        ticket.TravellerID = traveller.ID
        booking.Travellers = append(booking.Travellers, traveller)
        booking.Tickets = append(booking.Tickets, ticket)
    }

    sendJSONResponse(w, http.StatusOK, booking)
}

// resolveChain maps an itinerary id back to its segment chain using the
// current snapshot. A stale or unknown id is a validation error surfaced to
// the caller, not a server fault.
func resolveChain(itineraryID string) (timetable.SegmentChain, error) {
    snapshot := timetable.Current()

    ids := strings.Split(itineraryID, "+")
    chain := make(timetable.SegmentChain, 0, len(ids))
    for _, id := range ids {
        id = strings.TrimSpace(id)
        route := snapshot.RouteByID(id)
        if route == nil {
            return nil, fmt.Errorf("connection %q not found in the current network", id)
        }
        chain = append(chain, route)
    }
    if len(chain) == 0 || len(chain) > 3 {
        return nil, fmt.Errorf("itinerary must have between 1 and 3 segments")
    }
    return chain, nil
}

func newBookingReference() string {
    buf := make([]byte, 4)
    if _, err := rand.Read(buf); err != nil {
        return fmt.Sprintf("BK-%d", time.Now().UnixNano())
    }
    return "BK-" + strings.ToUpper(hex.EncodeToString(buf))
}
