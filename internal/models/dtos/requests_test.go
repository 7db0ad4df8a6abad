package dtos

import "testing"

func TestSearchRequestValidate(t *testing.T) {
	req := SearchRequest{Source: "bangalore", Destination: "delhi", Date: "2025-09-03"}
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if req.ClassType != "economy" {
		t.Errorf("Expected economy default, got %q", req.ClassType)
	}
	if req.Passengers != 1 {
		t.Errorf("Expected one passenger default, got %d", req.Passengers)
	}
}

func TestSearchRequestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		req  SearchRequest
	}{
		{"missing source", SearchRequest{Destination: "delhi", Date: "2025-09-03"}},
		{"missing destination", SearchRequest{Source: "bangalore", Date: "2025-09-03"}},
		{"missing date", SearchRequest{Source: "bangalore", Destination: "delhi"}},
		{"bad date format", SearchRequest{Source: "bangalore", Destination: "delhi", Date: "03-09-2025"}},
		{"same source and destination", SearchRequest{Source: "Delhi", Destination: "delhi", Date: "2025-09-03"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if errs := tc.req.Validate(); len(errs) == 0 {
				t.Error("Expected validation errors")
			}
		})
	}
}

func TestBookingRequestValidate(t *testing.T) {
	req := BookingRequest{
		FlightNumber: "AI101",
		Source:       "bangalore",
		Destination:  "delhi",
		Date:         "2025-09-03",
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Expected valid request, got %v", err)
	}
	if req.ClassType != "economy" || req.Passengers != 1 {
		t.Errorf("Defaults not applied: class=%q passengers=%d", req.ClassType, req.Passengers)
	}

	missing := BookingRequest{Source: "bangalore", Destination: "delhi", Date: "2025-09-03"}
	if err := missing.Validate(); err == nil {
		t.Error("Expected an error for a missing flight number")
	}
}

func TestRoundTripRequestValidate(t *testing.T) {
	good := BookingRequest{
		FlightNumber: "AI101",
		Source:       "bangalore",
		Destination:  "delhi",
		Date:         "2025-09-03",
	}
	bad := good
	bad.Date = "bogus"

	req := RoundTripRequest{Onward: good, Return: bad}
	if err := req.Validate(); err == nil {
		t.Error("Expected the invalid return leg to fail validation")
	}
}
