package dtos

import "time"

// APIResponse is the shared JSON envelope for every endpoint.
type APIResponse struct {
	Status       string      `json:"status"`
	Message      string      `json:"message,omitempty"`
	ResponseTime string      `json:"response_time,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// FlightOffer is one qualifying flight in a search response.
type FlightOffer struct {
	FlightNumber   string    `json:"flight_number"`
	Source         string    `json:"source"`
	Destination    string    `json:"destination"`
	ClassType      string    `json:"class_type"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	BasePrice      float64   `json:"base_price"`
	Surcharge      float64   `json:"surcharge"`
	PricePerPerson float64   `json:"price_per_person"`
	TotalFare      float64   `json:"total_fare"`
	AvailableSeats int       `json:"available_seats"`
	IsRecurring    bool      `json:"is_recurring"`
	RecurrenceDays string    `json:"recurrence_days"`
}

// SearchData is the payload of a search response.
type SearchData struct {
	Offers  []FlightOffer `json:"offers"`
	Outcome string        `json:"outcome"`
}

// ScheduleSeatSnapshot reports the ledger state right after a booking.
type ScheduleSeatSnapshot struct {
	FlightNumber   string `json:"flight_number"`
	FlightDate     string `json:"flight_date"`
	ClassType      string `json:"class_type"`
	Passengers     int    `json:"passengers"`
	AvailableSeats int    `json:"available_seats"`
}

// BookingData is the payload of a successful single-leg booking.
type BookingData struct {
	Reference string               `json:"reference"`
	Seat      ScheduleSeatSnapshot `json:"seat"`
}

// RoundTripData is the payload of a successful round-trip booking.
type RoundTripData struct {
	Reference string               `json:"reference"`
	Onward    ScheduleSeatSnapshot `json:"onward"`
	Return    ScheduleSeatSnapshot `json:"return"`
}
