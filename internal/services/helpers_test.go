package services

import (
	"testing"

	"skyfare/reservations/internal/db"
	"skyfare/reservations/internal/db/repositories"
	gormModels "skyfare/reservations/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory database. A single connection keeps
// every query on the same database and serializes concurrent transactions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("Failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(conn); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return conn
}

func createAirport(t *testing.T, conn *gorm.DB, city, code string) gormModels.Airport {
	t.Helper()
	airport := gormModels.Airport{City: city, Code: code}
	if err := conn.Create(&airport).Error; err != nil {
		t.Fatalf("Failed to create airport %s: %v", code, err)
	}
	return airport
}

func createSeatClass(t *testing.T, conn *gorm.DB, name string) gormModels.SeatClass {
	t.Helper()
	class := gormModels.SeatClass{Name: name}
	if err := conn.Create(&class).Error; err != nil {
		t.Fatalf("Failed to create seat class %s: %v", name, err)
	}
	return class
}

func createFlight(t *testing.T, conn *gorm.DB, number string, sourceID, destinationID uint, departureTime string, duration int, recurring bool) gormModels.Flight {
	t.Helper()
	flight := gormModels.Flight{
		FlightNumber:    number,
		SourceID:        sourceID,
		DestinationID:   destinationID,
		DepartureTime:   departureTime,
		DurationMinutes: duration,
		IsRecurring:     recurring,
	}
	if err := conn.Create(&flight).Error; err != nil {
		t.Fatalf("Failed to create flight %s: %v", number, err)
	}
	return flight
}

func createRecurrence(t *testing.T, conn *gorm.DB, flightID uint, days gormModels.WeekdaySet, startDate string, endDate *string) {
	t.Helper()
	rec := gormModels.FlightRecurrence{
		FlightID:   flightID,
		DaysOfWeek: days,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if err := conn.Create(&rec).Error; err != nil {
		t.Fatalf("Failed to create recurrence: %v", err)
	}
}

func createBaseSeat(t *testing.T, conn *gorm.DB, flightID, seatClassID uint, totalSeats int, basePrice float64) {
	t.Helper()
	base := gormModels.BaseFlightSeat{
		FlightID:    flightID,
		SeatClassID: seatClassID,
		TotalSeats:  totalSeats,
		BasePrice:   basePrice,
	}
	if err := conn.Create(&base).Error; err != nil {
		t.Fatalf("Failed to create base seat: %v", err)
	}
}

func createSchedule(t *testing.T, conn *gorm.DB, flightID uint, date string) gormModels.FlightSchedule {
	t.Helper()
	sched := gormModels.FlightSchedule{FlightID: flightID, FlightDate: date}
	if err := conn.Create(&sched).Error; err != nil {
		t.Fatalf("Failed to create schedule: %v", err)
	}
	return sched
}

func newScheduleService(conn *gorm.DB) *ScheduleService {
	return NewScheduleService(repositories.NewScheduleRepository(conn))
}

func newSearchService(conn *gorm.DB) *SearchService {
	return NewSearchService(
		repositories.NewAirportRepository(conn),
		repositories.NewSeatClassRepository(conn),
		repositories.NewFlightRepository(conn),
		repositories.NewScheduleSeatRepository(conn),
		newScheduleService(conn),
	)
}

func newBookingService(conn *gorm.DB) *BookingService {
	return NewBookingService(
		conn,
		repositories.NewAirportRepository(conn),
		repositories.NewSeatClassRepository(conn),
		repositories.NewFlightRepository(conn),
		repositories.NewScheduleSeatRepository(conn),
		newScheduleService(conn),
	)
}

// reloadFlight fetches a flight with its recurrence preloaded, the way
// repositories hand them to the materializer.
func reloadFlight(t *testing.T, conn *gorm.DB, id uint) *gormModels.Flight {
	t.Helper()
	var flight gormModels.Flight
	if err := conn.Preload("Recurrence").First(&flight, id).Error; err != nil {
		t.Fatalf("Failed to reload flight: %v", err)
	}
	return &flight
}
