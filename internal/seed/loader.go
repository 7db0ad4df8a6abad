package seed

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"skyfare/reservations/internal/logging"
	gormModels "skyfare/reservations/internal/models/gorm"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Loader populates the flight catalog from plain data files:
//
//	airports.txt           City,CODE
//	seat_classes.txt       one class name per line
//	flights.txt            number,src,dst,is_recurring,YYYY-MM-DD HH:MM,duration_minutes
//	flight_recurrences.txt number,day,...,start_date,end_date ("-" = open-ended)
//	flight_seats.txt       number,class,total_seats,base_price
//	class_pricings.txt     number,class,multiplier (optional file)
//
// One-time flights get their single schedule row pre-declared from the
// departure date, so the materializer only ever looks it up.
type Loader struct {
	db  *gorm.DB
	dir string
}

// NewLoader creates a loader reading from the given data directory.
func NewLoader(db *gorm.DB, dir string) *Loader {
	return &Loader{db: db, dir: dir}
}

// Load wipes and reloads the whole catalog.
func (l *Loader) Load(ctx context.Context) error {
	if err := l.wipe(ctx); err != nil {
		return err
	}

	var (
		airports map[string]uint // code -> id
		classes  map[string]uint // normalized name -> id
	)

	// The two directories are independent; load them in parallel.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		airports, err = l.loadAirports(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		classes, err = l.loadSeatClasses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	flights, err := l.loadFlights(ctx, airports)
	if err != nil {
		return err
	}
	if err := l.loadRecurrences(ctx, flights); err != nil {
		return err
	}
	if err := l.loadFlightSeats(ctx, flights, classes); err != nil {
		return err
	}
	if err := l.loadClassPricings(ctx, flights, classes); err != nil {
		return err
	}

	logging.Info("Catalog seeded",
		"airports", len(airports),
		"seat_classes", len(classes),
		"flights", len(flights),
	)
	return nil
}

// wipe deletes catalog and inventory rows, children first.
func (l *Loader) wipe(ctx context.Context) error {
	for _, model := range []interface{}{
		&gormModels.FlightScheduleSeat{},
		&gormModels.FlightSchedule{},
		&gormModels.ClassPricing{},
		&gormModels.BaseFlightSeat{},
		&gormModels.FlightRecurrence{},
		&gormModels.Flight{},
		&gormModels.SeatClass{},
		&gormModels.Airport{},
	} {
		if err := l.db.WithContext(ctx).Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to wipe catalog: %w", err)
		}
	}
	return nil
}

func (l *Loader) loadAirports(ctx context.Context) (map[string]uint, error) {
	byCode := make(map[string]uint)
	err := l.eachLine("airports.txt", func(line string) error {
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return fmt.Errorf("airports.txt: malformed line %q", line)
		}
		airport := gormModels.Airport{
			City: strings.TrimSpace(parts[0]),
			Code: strings.TrimSpace(parts[1]),
		}
		if err := l.db.WithContext(ctx).Create(&airport).Error; err != nil {
			return fmt.Errorf("failed to insert airport %s: %w", airport.Code, err)
		}
		byCode[airport.Code] = airport.ID
		return nil
	})
	return byCode, err
}

func (l *Loader) loadSeatClasses(ctx context.Context) (map[string]uint, error) {
	byName := make(map[string]uint)
	err := l.eachLine("seat_classes.txt", func(line string) error {
		class := gormModels.SeatClass{Name: strings.TrimSpace(line)}
		if err := l.db.WithContext(ctx).Create(&class).Error; err != nil {
			return fmt.Errorf("failed to insert seat class %s: %w", class.Name, err)
		}
		byName[strings.ToLower(class.Name)] = class.ID
		return nil
	})
	return byName, err
}

func (l *Loader) loadFlights(ctx context.Context, airports map[string]uint) (map[string]uint, error) {
	byNumber := make(map[string]uint)
	err := l.eachLine("flights.txt", func(line string) error {
		parts := strings.Split(line, ",")
		if len(parts) != 6 {
			return fmt.Errorf("flights.txt: malformed line %q", line)
		}

		number := strings.TrimSpace(parts[0])
		sourceID, ok := airports[strings.TrimSpace(parts[1])]
		if !ok {
			return fmt.Errorf("flights.txt: unknown airport %q", parts[1])
		}
		destinationID, ok := airports[strings.TrimSpace(parts[2])]
		if !ok {
			return fmt.Errorf("flights.txt: unknown airport %q", parts[2])
		}
		isRecurring := strings.TrimSpace(parts[3]) == "true"

		datetime := strings.Fields(strings.TrimSpace(parts[4]))
		if len(datetime) != 2 {
			return fmt.Errorf("flights.txt: malformed departure %q", parts[4])
		}
		departureDate, departureTime := datetime[0], datetime[1]

		duration, err := strconv.Atoi(strings.TrimSpace(parts[5]))
		if err != nil {
			return fmt.Errorf("flights.txt: bad duration for %s: %w", number, err)
		}

		flight := gormModels.Flight{
			FlightNumber:    number,
			SourceID:        sourceID,
			DestinationID:   destinationID,
			DepartureTime:   departureTime,
			DurationMinutes: duration,
			IsRecurring:     isRecurring,
		}
		if err := l.db.WithContext(ctx).Create(&flight).Error; err != nil {
			return fmt.Errorf("failed to insert flight %s: %w", number, err)
		}
		byNumber[number] = flight.ID

		if !isRecurring {
			sched := gormModels.FlightSchedule{FlightID: flight.ID, FlightDate: departureDate}
			if err := l.db.WithContext(ctx).Create(&sched).Error; err != nil {
				return fmt.Errorf("failed to declare schedule for %s: %w", number, err)
			}
		}
		return nil
	})
	return byNumber, err
}

func (l *Loader) loadRecurrences(ctx context.Context, flights map[string]uint) error {
	return l.eachLine("flight_recurrences.txt", func(line string) error {
		parts := strings.Split(line, ",")
		if len(parts) < 4 {
			return fmt.Errorf("flight_recurrences.txt: malformed line %q", line)
		}

		number := strings.TrimSpace(parts[0])
		flightID, ok := flights[number]
		if !ok {
			return fmt.Errorf("flight_recurrences.txt: unknown flight %q", number)
		}

		days := make(gormModels.WeekdaySet, 0, len(parts)-3)
		for _, p := range parts[1 : len(parts)-2] {
			d, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return fmt.Errorf("flight_recurrences.txt: bad weekday for %s: %w", number, err)
			}
			days = append(days, d)
		}

		rec := gormModels.FlightRecurrence{
			FlightID:   flightID,
			DaysOfWeek: days,
			StartDate:  strings.TrimSpace(parts[len(parts)-2]),
		}
		if end := strings.TrimSpace(parts[len(parts)-1]); end != "-" {
			rec.EndDate = &end
		}
		if err := l.db.WithContext(ctx).Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to insert recurrence for %s: %w", number, err)
		}
		return nil
	})
}

func (l *Loader) loadFlightSeats(ctx context.Context, flights, classes map[string]uint) error {
	return l.eachLine("flight_seats.txt", func(line string) error {
		parts := strings.Split(line, ",")
		if len(parts) != 4 {
			return fmt.Errorf("flight_seats.txt: malformed line %q", line)
		}

		flightID, classID, err := l.resolvePair(flights, classes, parts[0], parts[1])
		if err != nil {
			return fmt.Errorf("flight_seats.txt: %w", err)
		}

		total, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return fmt.Errorf("flight_seats.txt: bad seat count in %q: %w", line, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return fmt.Errorf("flight_seats.txt: bad price in %q: %w", line, err)
		}

		base := gormModels.BaseFlightSeat{
			FlightID:    flightID,
			SeatClassID: classID,
			TotalSeats:  total,
			BasePrice:   price,
		}
		if err := l.db.WithContext(ctx).Create(&base).Error; err != nil {
			return fmt.Errorf("failed to insert base seat: %w", err)
		}
		return nil
	})
}

func (l *Loader) loadClassPricings(ctx context.Context, flights, classes map[string]uint) error {
	path := filepath.Join(l.dir, "class_pricings.txt")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil // multipliers are optional; missing rows default to 1.0
	}

	return l.eachLine("class_pricings.txt", func(line string) error {
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return fmt.Errorf("class_pricings.txt: malformed line %q", line)
		}

		flightID, classID, err := l.resolvePair(flights, classes, parts[0], parts[1])
		if err != nil {
			return fmt.Errorf("class_pricings.txt: %w", err)
		}

		multiplier, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return fmt.Errorf("class_pricings.txt: bad multiplier in %q: %w", line, err)
		}

		pricing := gormModels.ClassPricing{
			FlightID:    flightID,
			SeatClassID: classID,
			Multiplier:  multiplier,
		}
		if err := l.db.WithContext(ctx).Create(&pricing).Error; err != nil {
			return fmt.Errorf("failed to insert class pricing: %w", err)
		}
		return nil
	})
}

func (l *Loader) resolvePair(flights, classes map[string]uint, flightPart, classPart string) (uint, uint, error) {
	number := strings.TrimSpace(flightPart)
	flightID, ok := flights[number]
	if !ok {
		return 0, 0, fmt.Errorf("unknown flight %q", number)
	}

	className := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(classPart), "_", " "))
	classID, ok := classes[className]
	if !ok {
		return 0, 0, fmt.Errorf("unknown seat class %q", classPart)
	}
	return flightID, classID, nil
}

// eachLine streams a data file, skipping blanks and # comments.
func (l *Loader) eachLine(name string, fn func(line string) error) error {
	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
