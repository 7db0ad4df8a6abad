package api

import (
	"time"

	"skyfare/reservations/internal/common"
	"skyfare/reservations/internal/config"
	"skyfare/reservations/internal/db/repositories"
	"skyfare/reservations/internal/logging"
	"skyfare/reservations/internal/services"

	"gorm.io/gorm"
)

// Repositories bundles every repository behind one handle.
type Repositories struct {
	Airports     *repositories.AirportRepository
	SeatClasses  *repositories.SeatClassRepository
	Flights      *repositories.FlightRepository
	Schedules    *repositories.ScheduleRepository
	ScheduleSeat *repositories.ScheduleSeatRepository
}

// Services bundles the business services the handlers depend on.
type Services struct {
	Cache     common.CacheInterface
	Scheduler *services.ScheduleService
	Search    *services.SearchService
	Booking   *services.BookingService
	Directory *services.DirectoryService
}

// Dependencies is the DI container built once at startup.
type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services. The cache backend falls
// back to in-memory when Redis is configured but unreachable.
func InitDependencies(cfg *config.Config, orm *gorm.DB) (*Dependencies, error) {
	repos := &Repositories{
		Airports:     repositories.NewAirportRepository(orm),
		SeatClasses:  repositories.NewSeatClassRepository(orm),
		Flights:      repositories.NewFlightRepository(orm),
		Schedules:    repositories.NewScheduleRepository(orm),
		ScheduleSeat: repositories.NewScheduleSeatRepository(orm),
	}

	var cache common.CacheInterface
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg)
		if err != nil {
			logging.Warn("Redis unavailable, using in-memory cache", "error", err.Error())
		} else {
			cache = redisCache
		}
	}
	if cache == nil {
		cache = common.NewCacheService(10*time.Minute, 30*time.Minute)
	}

	scheduler := services.NewScheduleService(repos.Schedules)

	svcs := &Services{
		Cache:     cache,
		Scheduler: scheduler,
		Search: services.NewSearchService(
			repos.Airports, repos.SeatClasses, repos.Flights, repos.ScheduleSeat, scheduler),
		Booking: services.NewBookingService(
			orm, repos.Airports, repos.SeatClasses, repos.Flights, repos.ScheduleSeat, scheduler),
		Directory: services.NewDirectoryService(cache, repos.Airports, repos.SeatClasses),
	}

	return &Dependencies{Repo: repos, Services: svcs}, nil
}
