package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"skyfare/reservations/internal/db/repositories"
	"skyfare/reservations/internal/models/dtos"
	gormModels "skyfare/reservations/internal/models/gorm"

	"gorm.io/gorm"
)

// bookingFixture seeds a BLR-DEL daily flight and its DEL-BLR return, each
// selling economy with the given capacity.
func bookingFixture(t *testing.T, conn *gorm.DB, capacity int) *BookingService {
	t.Helper()

	blr := createAirport(t, conn, "bangalore", "BLR")
	del := createAirport(t, conn, "delhi", "DEL")
	economy := createSeatClass(t, conn, "economy")

	onward := createFlight(t, conn, "AI101", blr.ID, del.ID, "06:30", 165, true)
	ret := createFlight(t, conn, "AI102", del.ID, blr.ID, "10:15", 170, true)
	for _, f := range []gormModels.Flight{onward, ret} {
		createRecurrence(t, conn, f.ID, gormModels.WeekdaySet{0, 1, 2, 3, 4, 5, 6}, "2025-08-01", nil)
		createBaseSeat(t, conn, f.ID, economy.ID, capacity, 4500)
	}

	return newBookingService(conn)
}

func bookingReq(number, source, destination, date string, passengers int) dtos.BookingRequest {
	return dtos.BookingRequest{
		FlightNumber: number,
		Source:       source,
		Destination:  destination,
		ClassType:    "economy",
		Date:         date,
		Passengers:   passengers,
	}
}

func availableSeats(t *testing.T, conn *gorm.DB, flightNumber, date string) int {
	t.Helper()
	var seat gormModels.FlightScheduleSeat
	err := conn.
		Joins("JOIN flight_schedules ON flight_schedules.id = flight_schedule_seats.flight_schedule_id").
		Joins("JOIN flights ON flights.id = flight_schedules.flight_id").
		Where("flights.flight_number = ? AND flight_schedules.flight_date = ?", flightNumber, date).
		First(&seat).Error
	if err != nil {
		t.Fatalf("Failed to load ledger for %s on %s: %v", flightNumber, date, err)
	}
	return seat.AvailableSeats
}

func TestBookDecrementsLedger(t *testing.T) {
	conn := setupTestDB(t)
	svc := bookingFixture(t, conn, 10)
	ctx := context.Background()

	data, err := svc.Book(ctx, bookingReq("AI101", "bangalore", "delhi", wednesday, 3))
	if err != nil {
		t.Fatalf("Booking failed: %v", err)
	}
	if data.Reference == "" {
		t.Error("Expected a booking reference")
	}
	if data.Seat.AvailableSeats != 7 {
		t.Errorf("Expected 7 seats remaining, got %d", data.Seat.AvailableSeats)
	}
	if got := availableSeats(t, conn, "AI101", wednesday); got != 7 {
		t.Errorf("Ledger shows %d seats, want 7", got)
	}
}

func TestBookSelloutBoundary(t *testing.T) {
	conn := setupTestDB(t)
	svc := bookingFixture(t, conn, 10)
	ctx := context.Background()

	// Taking the last seats succeeds and drains the ledger to exactly zero.
	data, err := svc.Book(ctx, bookingReq("AI101", "bangalore", "delhi", wednesday, 10))
	if err != nil {
		t.Fatalf("Booking the full cabin failed: %v", err)
	}
	if data.Seat.AvailableSeats != 0 {
		t.Errorf("Expected 0 seats remaining, got %d", data.Seat.AvailableSeats)
	}

	// One more is a conflict and leaves the ledger untouched.
	_, err = svc.Book(ctx, bookingReq("AI101", "bangalore", "delhi", wednesday, 1))
	if !errors.Is(err, repositories.ErrInsufficientSeats) {
		t.Fatalf("Expected ErrInsufficientSeats, got %v", err)
	}
	if got := availableSeats(t, conn, "AI101", wednesday); got != 0 {
		t.Errorf("Ledger shows %d seats after rejected booking, want 0", got)
	}

	// The same flight on another date is unaffected.
	if _, err := svc.Book(ctx, bookingReq("AI101", "bangalore", "delhi", thursday, 1)); err != nil {
		t.Errorf("Booking on a different date failed: %v", err)
	}
}

func TestBookInsufficientLeavesLedgerUntouched(t *testing.T) {
	conn := setupTestDB(t)
	svc := bookingFixture(t, conn, 5)
	ctx := context.Background()

	_, err := svc.Book(ctx, bookingReq("AI101", "bangalore", "delhi", wednesday, 6))
	if !errors.Is(err, repositories.ErrInsufficientSeats) {
		t.Fatalf("Expected ErrInsufficientSeats, got %v", err)
	}
	if got := availableSeats(t, conn, "AI101", wednesday); got != 5 {
		t.Errorf("Partial decrement detected: %d seats, want 5", got)
	}
}

func TestBookUnknownEntities(t *testing.T) {
	conn := setupTestDB(t)
	svc := bookingFixture(t, conn, 10)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dtos.BookingRequest
		want error
	}{
		{"unknown flight", bookingReq("ZZ999", "bangalore", "delhi", wednesday, 1), repositories.ErrNotFound},
		{"unknown city", bookingReq("AI101", "atlantis", "delhi", wednesday, 1), repositories.ErrNotFound},
		{"wrong route for flight", bookingReq("AI102", "bangalore", "delhi", wednesday, 1), repositories.ErrNotFound},
		{"not operating", bookingReq("AI101", "bangalore", "delhi", "2025-07-01", 1), ErrNotOperating},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Book(ctx, tc.req)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}

	unknownClass := bookingReq("AI101", "bangalore", "delhi", wednesday, 1)
	unknownClass.ClassType = "premium"
	if _, err := svc.Book(ctx, unknownClass); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown class, got %v", err)
	}
}

func TestBookConcurrentNeverOversells(t *testing.T) {
	conn := setupTestDB(t)
	svc := bookingFixture(t, conn, 10)
	ctx := context.Background()

	const workers = 20
	results := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Book(ctx, bookingReq("AI101", "bangalore", "delhi", wednesday, 1))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, repositories.ErrInsufficientSeats):
		default:
			t.Fatalf("Unexpected booking error: %v", err)
		}
	}
	if succeeded != 10 {
		t.Errorf("Expected exactly 10 bookings to succeed, got %d", succeeded)
	}
	if got := availableSeats(t, conn, "AI101", wednesday); got != 0 {
		t.Errorf("Ledger shows %d seats after sellout, want 0", got)
	}
}

func TestBookRoundTrip(t *testing.T) {
	conn := setupTestDB(t)
	svc := bookingFixture(t, conn, 10)
	ctx := context.Background()

	data, err := svc.BookRoundTrip(ctx, dtos.RoundTripRequest{
		Onward: bookingReq("AI101", "bangalore", "delhi", wednesday, 2),
		Return: bookingReq("AI102", "delhi", "bangalore", thursday, 2),
	})
	if err != nil {
		t.Fatalf("Round trip failed: %v", err)
	}
	if data.Reference == "" {
		t.Error("Expected a booking reference")
	}
	if data.Onward.AvailableSeats != 8 || data.Return.AvailableSeats != 8 {
		t.Errorf("Expected 8 seats remaining on both legs, got %d and %d",
			data.Onward.AvailableSeats, data.Return.AvailableSeats)
	}
}

func TestBookRoundTripReturnFailureRollsBackOnward(t *testing.T) {
	conn := setupTestDB(t)
	svc := bookingFixture(t, conn, 10)
	ctx := context.Background()

	// Drain the return leg so its decrement must fail.
	if _, err := svc.Book(ctx, bookingReq("AI102", "delhi", "bangalore", thursday, 10)); err != nil {
		t.Fatalf("Setup booking failed: %v", err)
	}

	_, err := svc.BookRoundTrip(ctx, dtos.RoundTripRequest{
		Onward: bookingReq("AI101", "bangalore", "delhi", wednesday, 2),
		Return: bookingReq("AI102", "delhi", "bangalore", thursday, 2),
	})
	if !errors.Is(err, repositories.ErrInsufficientSeats) {
		t.Fatalf("Expected ErrInsufficientSeats, got %v", err)
	}

	var rtErr *RoundTripError
	if !errors.As(err, &rtErr) {
		t.Fatalf("Expected a RoundTripError, got %T", err)
	}
	if rtErr.Leg != "return" || !rtErr.RolledBack {
		t.Errorf("Expected a rolled-back return failure, got leg=%s rolledBack=%v", rtErr.Leg, rtErr.RolledBack)
	}

	// The onward decrement must have been undone.
	if got := availableSeats(t, conn, "AI101", wednesday); got != 10 {
		t.Errorf("Onward ledger shows %d seats, want 10", got)
	}
}

func TestBookRoundTripResolveFailureTouchesNothing(t *testing.T) {
	conn := setupTestDB(t)
	svc := bookingFixture(t, conn, 10)
	ctx := context.Background()

	// The return leg cannot resolve, so neither ledger may move.
	_, err := svc.BookRoundTrip(ctx, dtos.RoundTripRequest{
		Onward: bookingReq("AI101", "bangalore", "delhi", wednesday, 2),
		Return: bookingReq("ZZ999", "delhi", "bangalore", thursday, 2),
	})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	var rtErr *RoundTripError
	if !errors.As(err, &rtErr) {
		t.Fatalf("Expected a RoundTripError, got %T", err)
	}
	if rtErr.Leg != "return" || rtErr.RolledBack {
		t.Errorf("Expected a pre-transaction return failure, got leg=%s rolledBack=%v", rtErr.Leg, rtErr.RolledBack)
	}

	if got := availableSeats(t, conn, "AI101", wednesday); got != 10 {
		t.Errorf("Onward ledger shows %d seats, want 10", got)
	}
}
