package dtos

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// SearchRequest carries the query parameters of a flight search.
type SearchRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	ClassType   string `json:"class_type"`
	Passengers  int    `json:"passengers"`
}

// Validate checks the request and applies defaults (economy class, one
// passenger). Validation errors are resolved before any inventory is touched.
func (r *SearchRequest) Validate() []string {
	var errs []string

	if strings.TrimSpace(r.Source) == "" {
		errs = append(errs, "Source is missing")
	}
	if strings.TrimSpace(r.Destination) == "" {
		errs = append(errs, "Destination is missing")
	}
	if strings.TrimSpace(r.Date) == "" {
		errs = append(errs, "Date is missing")
	} else if _, err := time.Parse(DateLayout, r.Date); err != nil {
		errs = append(errs, "Invalid date format")
	}
	if r.Source != "" && r.Destination != "" &&
		strings.EqualFold(strings.TrimSpace(r.Source), strings.TrimSpace(r.Destination)) {
		errs = append(errs, "Source and Destination must be different")
	}

	if r.ClassType == "" {
		r.ClassType = "economy"
	}
	if r.Passengers < 1 {
		r.Passengers = 1
	}
	return errs
}

// BookingRequest identifies one leg to book.
type BookingRequest struct {
	FlightNumber string `json:"flight_number"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	ClassType    string `json:"class_type"`
	Date         string `json:"date"`
	Passengers   int    `json:"passengers"`
}

// Validate checks the request and applies the same defaults as search.
func (r *BookingRequest) Validate() error {
	if strings.TrimSpace(r.FlightNumber) == "" {
		return errors.New("flight_number is missing")
	}
	if strings.TrimSpace(r.Source) == "" || strings.TrimSpace(r.Destination) == "" {
		return errors.New("source and destination are required")
	}
	if strings.EqualFold(strings.TrimSpace(r.Source), strings.TrimSpace(r.Destination)) {
		return errors.New("source and destination must be different")
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return errors.New("invalid date format")
	}
	if r.ClassType == "" {
		r.ClassType = "economy"
	}
	if r.Passengers < 1 {
		r.Passengers = 1
	}
	return nil
}

// RoundTripRequest bundles the onward and return legs of one atomic booking.
type RoundTripRequest struct {
	Onward BookingRequest `json:"onward"`
	Return BookingRequest `json:"return"`
}

// Validate validates both legs.
func (r *RoundTripRequest) Validate() error {
	if err := r.Onward.Validate(); err != nil {
		return errors.New("onward: " + err.Error())
	}
	if err := r.Return.Validate(); err != nil {
		return errors.New("return: " + err.Error())
	}
	return nil
}
