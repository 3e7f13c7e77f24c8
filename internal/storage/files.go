// Package storage persists the room catalog and the reservation ledger
// as two comma-delimited text files. The format has no header, no quoting
// and no escaping, so field values must not contain the delimiter.
package storage

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"hotelier/internal/hotel"
	"hotelier/internal/model"
)

const (
	// DefaultRoomsFile and DefaultReservationsFile live in the process's
	// working directory unless overridden by config.
	DefaultRoomsFile        = "rooms.csv"
	DefaultReservationsFile = "reservations.csv"

	roomFields        = 3
	reservationFields = 6
)

// Store reads and writes both record streams. A missing file on load is
// treated as empty; a malformed line fails the whole load. Parsing is
// deliberately strict, there is no per-line recovery.
type Store struct {
	roomsPath        string
	reservationsPath string
	logger           *zerolog.Logger
}

// New constructs a store over the two backing files.
func New(roomsPath, reservationsPath string, logger *zerolog.Logger) *Store {
	if roomsPath == "" {
		roomsPath = DefaultRoomsFile
	}
	if reservationsPath == "" {
		reservationsPath = DefaultReservationsFile
	}
	return &Store{
		roomsPath:        roomsPath,
		reservationsPath: reservationsPath,
		logger:           logger,
	}
}

// LoadRooms reads the rooms file. A missing file yields an empty slice.
func (s *Store) LoadRooms() ([]model.Room, error) {
	lines, err := readLines(s.roomsPath)
	if err != nil {
		return nil, err
	}

	var rooms []model.Room
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != roomFields {
			return nil, fmt.Errorf("%s line %d: expected %d fields, got %d", s.roomsPath, i+1, roomFields, len(parts))
		}
		number, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: room number: %w", s.roomsPath, i+1, err)
		}
		price, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: price: %w", s.roomsPath, i+1, err)
		}
		rooms = append(rooms, model.Room{Number: number, Category: parts[1], PricePerNight: price})
	}
	return rooms, nil
}

// SaveRooms overwrites the rooms file with the complete catalog.
func (s *Store) SaveRooms(rooms []model.Room) error {
	lines := make([]string, 0, len(rooms))
	for _, r := range rooms {
		lines = append(lines, strings.Join([]string{
			strconv.Itoa(r.Number),
			r.Category,
			strconv.FormatFloat(r.PricePerNight, 'f', -1, 64),
		}, ","))
	}
	return writeLines(s.roomsPath, lines)
}

// LoadReservations reads the reservations file. A missing file yields an
// empty slice.
func (s *Store) LoadReservations() ([]model.Reservation, error) {
	lines, err := readLines(s.reservationsPath)
	if err != nil {
		return nil, err
	}

	var reservations []model.Reservation
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != reservationFields {
			return nil, fmt.Errorf("%s line %d: expected %d fields, got %d", s.reservationsPath, i+1, reservationFields, len(parts))
		}
		roomNumber, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: room number: %w", s.reservationsPath, i+1, err)
		}
		checkIn, err := time.Parse(model.DateLayout, parts[3])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: check-in: %w", s.reservationsPath, i+1, err)
		}
		checkOut, err := time.Parse(model.DateLayout, parts[4])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: check-out: %w", s.reservationsPath, i+1, err)
		}
		total, err := strconv.ParseFloat(parts[5], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: total: %w", s.reservationsPath, i+1, err)
		}
		reservations = append(reservations, model.Reservation{
			ID:         parts[0],
			GuestName:  parts[1],
			RoomNumber: roomNumber,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			TotalPrice: total,
		})
	}
	return reservations, nil
}

// SaveReservations overwrites the reservations file with the complete
// ledger.
func (s *Store) SaveReservations(reservations []model.Reservation) error {
	lines := make([]string, 0, len(reservations))
	for _, r := range reservations {
		lines = append(lines, strings.Join([]string{
			r.ID,
			r.GuestName,
			strconv.Itoa(r.RoomNumber),
			r.CheckIn.Format(model.DateLayout),
			r.CheckOut.Format(model.DateLayout),
			strconv.FormatFloat(r.TotalPrice, 'f', -1, 64),
		}, ","))
	}
	return writeLines(s.reservationsPath, lines)
}

// Load fills the service from both files. Loaded reservations go through
// Restore so the ID counter ends up past every persisted suffix.
func (s *Store) Load(svc *hotel.Service) error {
	rooms, err := s.LoadRooms()
	if err != nil {
		return fmt.Errorf("load rooms: %w", err)
	}
	for _, r := range rooms {
		svc.AddRoom(r)
	}

	reservations, err := s.LoadReservations()
	if err != nil {
		return fmt.Errorf("load reservations: %w", err)
	}
	for _, res := range reservations {
		svc.Restore(res)
	}

	if s.logger != nil {
		s.logger.Info().
			Int("rooms", len(rooms)).
			Int("reservations", len(reservations)).
			Msg("state loaded")
	}
	return nil
}

// Save writes the complete in-memory state of the service to both files.
func (s *Store) Save(svc *hotel.Service) error {
	if err := s.SaveRooms(svc.Rooms()); err != nil {
		return fmt.Errorf("save rooms: %w", err)
	}
	if err := s.SaveReservations(svc.Reservations()); err != nil {
		return fmt.Errorf("save reservations: %w", err)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

func writeLines(path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
