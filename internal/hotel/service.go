package hotel

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"hotelier/internal/events"
	"hotelier/internal/model"
)

const (
	idPrefix      = "R"
	idCounterBase = 1000
)

// Service owns the room catalog, the reservation ledger and the
// reservation ID counter. It is not safe for concurrent use; the
// interactive session is single-threaded.
type Service struct {
	rooms        map[int]model.Room
	reservations map[string]model.Reservation
	nextID       int
	bus          *events.Bus
	logger       *zerolog.Logger
}

// NewService constructs an empty service. The bus may be nil when no
// subscriber cares about booking events.
func NewService(bus *events.Bus, logger *zerolog.Logger) *Service {
	return &Service{
		rooms:        make(map[int]model.Room),
		reservations: make(map[string]model.Reservation),
		nextID:       idCounterBase,
		bus:          bus,
		logger:       logger,
	}
}

// AddRoom inserts or replaces the room keyed by its number.
func (s *Service) AddRoom(r model.Room) {
	s.rooms[r.Number] = r
}

// Rooms returns all rooms in the catalog, order unspecified.
func (s *Service) Rooms() []model.Room {
	out := make([]model.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out
}

// Room looks up a room by number.
func (s *Service) Room(number int) (model.Room, bool) {
	r, ok := s.rooms[number]
	return r, ok
}

// SearchAvailable returns every room whose category matches
// case-insensitively and which has no overlapping reservation for the
// given range. An empty result is not an error.
func (s *Service) SearchAvailable(category string, checkIn, checkOut time.Time) []model.Room {
	out := []model.Room{}
	for _, r := range s.rooms {
		if !strings.EqualFold(r.Category, category) {
			continue
		}
		if s.IsAvailable(r.Number, checkIn, checkOut) {
			out = append(out, r)
		}
	}
	return out
}

// IsAvailable reports whether the room has no reservation overlapping the
// half-open range [checkIn, checkOut). Touching stays coexist.
func (s *Service) IsAvailable(roomNumber int, checkIn, checkOut time.Time) bool {
	for _, res := range s.reservations {
		if res.RoomNumber != roomNumber {
			continue
		}
		if res.Overlaps(checkIn, checkOut) {
			return false
		}
	}
	return true
}

// BookingResult is the tagged outcome of Book. Exactly one of the three
// cases holds: Reservation is set (booked), Unavailable is true (room
// taken, a normal retry-able outcome), or Book returned an error.
type BookingResult struct {
	Reservation *model.Reservation
	Unavailable bool
}

// Book validates the request, computes the total price and commits a new
// reservation. Validation failures come back as errors (ErrRoomNotFound,
// ErrInvalidRange); an occupied room comes back as Unavailable with a nil
// error.
func (s *Service) Book(guestName string, roomNumber int, checkIn, checkOut time.Time) (BookingResult, error) {
	room, ok := s.rooms[roomNumber]
	if !ok {
		return BookingResult{}, fmt.Errorf("%w: %d", ErrRoomNotFound, roomNumber)
	}
	if !checkOut.After(checkIn) {
		return BookingResult{}, ErrInvalidRange
	}
	if !s.IsAvailable(roomNumber, checkIn, checkOut) {
		return BookingResult{Unavailable: true}, nil
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	res := model.Reservation{
		ID:         fmt.Sprintf("%s%d", idPrefix, s.nextID),
		GuestName:  guestName,
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: float64(nights) * room.PricePerNight,
	}
	s.nextID++
	s.reservations[res.ID] = res

	if s.logger != nil {
		s.logger.Info().
			Str("id", res.ID).
			Int("room", roomNumber).
			Int("nights", nights).
			Float64("total", res.TotalPrice).
			Msg("reservation created")
	}
	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.TypeBookingCreated, Reservation: res})
	}
	return BookingResult{Reservation: &res}, nil
}

// Cancel removes the reservation if present and reports whether removal
// occurred.
func (s *Service) Cancel(id string) bool {
	res, ok := s.reservations[id]
	if !ok {
		return false
	}
	delete(s.reservations, id)

	if s.logger != nil {
		s.logger.Info().Str("id", id).Int("room", res.RoomNumber).Msg("reservation cancelled")
	}
	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.TypeBookingCancelled, Reservation: res})
	}
	return true
}

// Reservation looks up a reservation by ID.
func (s *Service) Reservation(id string) (model.Reservation, bool) {
	r, ok := s.reservations[id]
	return r, ok
}

// Reservations returns all reservations, order unspecified.
func (s *Service) Reservations() []model.Reservation {
	out := make([]model.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, r)
	}
	return out
}

// Restore puts a persisted reservation back verbatim and advances the ID
// counter past its numeric suffix, so restarts never reissue an ID
// already on disk. No availability check runs here; the ledger trusts
// what it previously saved.
func (s *Service) Restore(res model.Reservation) {
	s.reservations[res.ID] = res

	if n, ok := numericSuffix(res.ID); ok && n+1 > s.nextID {
		s.nextID = n + 1
	}
}

// numericSuffix extracts the digits of a reservation ID.
func numericSuffix(id string) (int, bool) {
	n, found := 0, false
	for _, c := range id {
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			found = true
		}
	}
	return n, found
}
