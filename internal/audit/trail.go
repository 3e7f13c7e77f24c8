// Package audit appends a JSON-lines record for every booking and
// cancellation. The trail is append-only and separate from the persisted
// state files; losing it never affects the ledger.
package audit

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hotelier/internal/events"
)

// Record is one line of the trail.
type Record struct {
	EventID       string    `json:"event_id"`
	Action        string    `json:"action"`
	ReservationID string    `json:"reservation_id"`
	GuestName     string    `json:"guest_name"`
	RoomNumber    int       `json:"room_number"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	TotalPrice    float64   `json:"total_price"`
	At            time.Time `json:"at"`
}

// Trail writes booking events to a file.
type Trail struct {
	path   string
	logger *zerolog.Logger
}

// NewTrail constructs a trail over the given file.
func NewTrail(path string, logger *zerolog.Logger) *Trail {
	return &Trail{path: path, logger: logger}
}

// Attach subscribes the trail to booking events on the bus.
func (t *Trail) Attach(bus *events.Bus) {
	bus.Subscribe(events.TypeBookingCreated, t.Handle)
	bus.Subscribe(events.TypeBookingCancelled, t.Handle)
}

// Handle appends one record for the event. Failures are logged and
// swallowed; the trail must never break a booking.
func (t *Trail) Handle(event events.Event) error {
	res := event.Reservation
	rec := Record{
		EventID:       uuid.NewString(),
		Action:        event.Type,
		ReservationID: res.ID,
		GuestName:     res.GuestName,
		RoomNumber:    res.RoomNumber,
		CheckIn:       res.CheckIn.Format("2006-01-02"),
		CheckOut:      res.CheckOut.Format("2006-01-02"),
		TotalPrice:    res.TotalPrice,
		At:            event.CreatedAt,
	}

	if err := t.append(rec); err != nil {
		if t.logger != nil {
			t.logger.Error().Err(err).Str("action", event.Type).Msg("audit append failed")
		}
	}
	return nil
}

func (t *Trail) append(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(data, '\n'))
	return err
}
