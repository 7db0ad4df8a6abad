package services

import (
	"context"
	"testing"
	"time"

	"skyfare/reservations/internal/common"
	"skyfare/reservations/internal/db/repositories"
	gormModels "skyfare/reservations/internal/models/gorm"

	"gorm.io/gorm"
)

func newDirectoryService(conn *gorm.DB) *DirectoryService {
	return NewDirectoryService(
		common.NewCacheService(5*time.Minute, 10*time.Minute),
		repositories.NewAirportRepository(conn),
		repositories.NewSeatClassRepository(conn),
	)
}

func TestListCitiesSortedAndCached(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()

	createAirport(t, conn, "delhi", "DEL")
	createAirport(t, conn, "bangalore", "BLR")
	createAirport(t, conn, "mumbai", "BOM")

	svc := newDirectoryService(conn)

	cities, err := svc.ListCities(ctx)
	if err != nil {
		t.Fatalf("ListCities failed: %v", err)
	}
	want := []string{"bangalore", "delhi", "mumbai"}
	if len(cities) != len(want) {
		t.Fatalf("Expected %d cities, got %d", len(want), len(cities))
	}
	for i := range want {
		if cities[i] != want[i] {
			t.Errorf("Expected city %q at position %d, got %q", want[i], i, cities[i])
		}
	}

	// A later database change is invisible until the cache expires.
	if err := conn.Delete(&gormModels.Airport{}, "code = ?", "BOM").Error; err != nil {
		t.Fatalf("Failed to delete airport: %v", err)
	}
	cached, err := svc.ListCities(ctx)
	if err != nil {
		t.Fatalf("ListCities failed: %v", err)
	}
	if len(cached) != 3 {
		t.Errorf("Expected the cached list of 3 cities, got %d", len(cached))
	}
}

func TestListSeatClasses(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()

	createSeatClass(t, conn, "economy")
	createSeatClass(t, conn, "business")
	createSeatClass(t, conn, "first class")

	svc := newDirectoryService(conn)

	classes, err := svc.ListSeatClasses(ctx)
	if err != nil {
		t.Fatalf("ListSeatClasses failed: %v", err)
	}
	if len(classes) != 3 {
		t.Fatalf("Expected 3 seat classes, got %d", len(classes))
	}
}

func TestDirectoryEmptyListNotCached(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	svc := newDirectoryService(conn)

	cities, err := svc.ListCities(ctx)
	if err != nil {
		t.Fatalf("ListCities failed: %v", err)
	}
	if len(cities) != 0 {
		t.Fatalf("Expected no cities, got %d", len(cities))
	}

	// Data seeded after the empty read shows up immediately.
	createAirport(t, conn, "delhi", "DEL")
	cities, err = svc.ListCities(ctx)
	if err != nil {
		t.Fatalf("ListCities failed: %v", err)
	}
	if len(cities) != 1 {
		t.Errorf("Expected the fresh city to appear, got %d entries", len(cities))
	}
}
