package constants

// APIStatus is the coarse status carried in every response envelope.
type APIStatus string

const (
	APIStatusOk    APIStatus = "success"
	APIStatusError APIStatus = "error"
)

// Search outcome messages, keyed by the outcome codes in services.
const (
	MsgFlightsFound     = "Flights found"
	MsgInvalidClass     = "Invalid class type"
	MsgUnknownRoute     = "Source or destination city not found"
	MsgRouteNotOperated = "No flights operate on this route"
	MsgNoFlightsOnDate  = "No flights on the selected date"
	MsgNoClassAvailable = "Selected class is not available on this route"
	MsgAllSeatsBooked   = "All seats are booked for the selected date"
)

// Booking messages.
const (
	MsgBookingSuccessful   = "Booking successful"
	MsgRoundTripSuccessful = "Round trip booked"
	MsgRoundTripRolledBack = "Round trip rolled back"
	MsgNotEnoughSeats      = "Not enough seats"
	MsgBookingFailed       = "Booking failed"
)
