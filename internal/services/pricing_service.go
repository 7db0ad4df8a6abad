package services

import "time"

// Surcharge computes the additive dynamic-pricing adjustment for one seat.
// It is a pure function of demand (seats sold) and urgency (days until
// departure); callers add the result to basePrice * classMultiplier.
// Both components are independently additive and never negative.
func Surcharge(basePrice float64, totalSeats, availableSeats int, departureDate string, today time.Time) float64 {
	return seatSurcharge(basePrice, totalSeats, availableSeats) +
		dateSurcharge(basePrice, departureDate, today)
}

// seatSurcharge prices demand: a fraction of base price by sold ratio.
// Bands have closed lower / inclusive upper bounds; first match wins.
func seatSurcharge(basePrice float64, totalSeats, availableSeats int) float64 {
	if totalSeats <= 0 {
		return 0
	}

	soldRatio := float64(totalSeats-availableSeats) / float64(totalSeats)

	var fraction float64
	switch {
	case soldRatio <= 0.30:
		fraction = 0
	case soldRatio <= 0.50:
		fraction = 0.20
	case soldRatio <= 0.75:
		fraction = 0.35
	default:
		fraction = 0.50
	}

	return basePrice * fraction
}

// dateSurcharge prices urgency by whole days remaining. An unparseable date
// contributes nothing; pricing never fails.
func dateSurcharge(basePrice float64, departureDate string, today time.Time) float64 {
	dep, err := time.Parse("2006-01-02", departureDate)
	if err != nil {
		return 0
	}

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	daysLeft := int(dep.Sub(midnight).Hours() / 24)

	switch {
	case daysLeft >= 3 && daysLeft <= 15:
		return basePrice * 0.02 * float64(15-daysLeft)
	case daysLeft >= 0 && daysLeft < 3:
		return basePrice * 0.10 * float64(3-daysLeft)
	default:
		return 0
	}
}
