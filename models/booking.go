package models

import "time"

// Traveller is one passenger on a booking.
type Traveller struct {
    ID           int64  `json:"id,omitempty"`
    FirstName    string `json:"first_name" validate:"required"`
    LastName     string `json:"last_name" validate:"required"`
    Age          int    `json:"age" validate:"gte=0,lte=120"`
    GovernmentID string `json:"government_id" validate:"required"`
}

// BookingRequest is the payload for creating a booking: the itinerary the
// caller chose from a search response, identified by its id (route ids
// joined with "+"), plus at least one traveller.
type BookingRequest struct {
    ItineraryID string      `json:"itinerary_id" validate:"required"`
    Class       string      `json:"class" validate:"omitempty,oneof=first second"`
    Travellers  []Traveller `json:"travellers" validate:"required,min=1,dive"`
}

// BookingSegment is one persisted leg of a booked trip.
type BookingSegment struct {
    ID         int64   `json:"id,omitempty"`
    LegOrder   int     `json:"leg_order"`
    RouteID    string  `json:"route_id"`
    From       string  `json:"from"`
    ArriveCity string  `json:"arrive_city"`
    DepartTime string  `json:"depart_time"`
    ArriveTime string  `json:"arrive_time"`
    TrainType  string  `json:"train_type,omitempty"`
    Price      float64 `json:"price"`
}

// Ticket is issued per traveller once a booking is stored.
type Ticket struct {
    ID           int64  `json:"id,omitempty"`
    TicketNumber string `json:"ticket_number"`
    TravellerID  int64  `json:"traveller_id"`
}

// Booking is a persisted trip with its segments, travellers and tickets.
type Booking struct {
    ID         int64            `json:"id"`
    Reference  string           `json:"reference"`
    Status     string           `json:"status"`
    Class      string           `json:"class"`
    TotalPrice float64          `json:"total_price"`
    CreatedAt  time.Time        `json:"created_at"`
    Segments   []BookingSegment `json:"segments"`
    Travellers []Traveller      `json:"travellers"`
    Tickets    []Ticket         `json:"tickets"`
}
