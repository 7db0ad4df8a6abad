package services

import (
	"context"
	"strings"
	"time"

	"skyfare/reservations/internal/common"
	"skyfare/reservations/internal/db/repositories"
)

const (
	cacheKeyCities      = "directory:cities"
	cacheKeySeatClasses = "directory:seat_classes"
	directoryCacheTTL   = 10 * time.Minute

	// Cached lists are stored newline-joined so both cache backends hold a
	// plain string.
	listSeparator = "\n"
)

// DirectoryService serves the read-only city and seat-class directories,
// cached in front of the database. Only directory data is ever cached; the
// ledger and search results always hit storage.
type DirectoryService struct {
	cache    common.CacheInterface
	airports *repositories.AirportRepository
	classes  *repositories.SeatClassRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(
	cache common.CacheInterface,
	airports *repositories.AirportRepository,
	classes *repositories.SeatClassRepository,
) *DirectoryService {
	return &DirectoryService{cache: cache, airports: airports, classes: classes}
}

// ListCities returns all cities with departing or arriving flights.
func (s *DirectoryService) ListCities(ctx context.Context) ([]string, error) {
	return s.cachedList(cacheKeyCities, func() ([]string, error) {
		return s.airports.ListCities(ctx)
	})
}

// ListSeatClasses returns all seat class names.
func (s *DirectoryService) ListSeatClasses(ctx context.Context) ([]string, error) {
	return s.cachedList(cacheKeySeatClasses, func() ([]string, error) {
		return s.classes.ListNames(ctx)
	})
}

func (s *DirectoryService) cachedList(key string, loader func() ([]string, error)) ([]string, error) {
	if cached, found := s.cache.Get(key); found {
		if joined, ok := cached.(string); ok && joined != "" {
			return strings.Split(joined, listSeparator), nil
		}
	}

	list, err := loader()
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		s.cache.Set(key, strings.Join(list, listSeparator), directoryCacheTTL)
	}
	return list, nil
}
