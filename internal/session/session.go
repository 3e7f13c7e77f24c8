// Package session drives the interactive console menu. All reads go
// through one line-oriented scanner and all writes through one writer, so
// tests can run a whole session against buffers.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"hotelier/internal/export"
	"hotelier/internal/hotel"
	"hotelier/internal/metrics"
	"hotelier/internal/model"
	"hotelier/internal/storage"
)

// Session owns one interactive run over the booking service.
type Session struct {
	svc          *hotel.Service
	store        *storage.Store
	in           *bufio.Scanner
	out          io.Writer
	logger       *zerolog.Logger
	seeds        []model.Room
	paymentDelay time.Duration
	exportPath   string
}

// Options tune session behavior beyond the required collaborators.
type Options struct {
	// Seeds is the fallback catalog applied only when the catalog is
	// empty after load.
	Seeds []model.Room

	// PaymentDelay is the simulated payment pause; zero skips it.
	PaymentDelay time.Duration

	// ExportPath is where the Excel report goes.
	ExportPath string
}

// New constructs a session reading from in and writing to out.
func New(svc *hotel.Service, store *storage.Store, in io.Reader, out io.Writer, logger *zerolog.Logger, opts Options) *Session {
	return &Session{
		svc:          svc,
		store:        store,
		in:           bufio.NewScanner(in),
		out:          out,
		logger:       logger,
		seeds:        opts.Seeds,
		paymentDelay: opts.PaymentDelay,
		exportPath:   opts.ExportPath,
	}
}

// Run loops over the menu until save & exit or input runs out. Input
// exhaustion ends the loop without saving, same as killing the process.
func (s *Session) Run() {
	if len(s.svc.Rooms()) == 0 {
		for _, r := range s.seeds {
			s.svc.AddRoom(r)
		}
		if s.logger != nil && len(s.seeds) > 0 {
			s.logger.Info().Int("rooms", len(s.seeds)).Msg("seeded default catalog")
		}
	}

	for {
		s.printMenu()
		line, ok := s.readLine()
		if !ok {
			return
		}
		switch strings.TrimSpace(line) {
		case "1":
			s.doSearch()
		case "2":
			s.doBook()
		case "3":
			s.doCancel()
		case "4":
			s.doView()
		case "5":
			s.listRooms()
		case "6":
			s.listReservations()
		case "7":
			s.doExport()
		case "0":
			if err := s.store.Save(s.svc); err != nil {
				s.printf("Save failed: %v\n", err)
			} else {
				s.printf("Saved.\n")
			}
			s.printf("Goodbye\n")
			return
		default:
			s.printf("Unknown option\n")
		}
	}
}

func (s *Session) printMenu() {
	s.printf("\n--- Hotel Reservation System ---\n")
	s.printf("1) Search available rooms\n")
	s.printf("2) Book a room\n")
	s.printf("3) Cancel reservation\n")
	s.printf("4) View reservation\n")
	s.printf("5) List all rooms\n")
	s.printf("6) List all reservations\n")
	s.printf("7) Export Excel report\n")
	s.printf("0) Save & Exit\n")
	s.printf("Choose: ")
}

func (s *Session) doSearch() {
	category, ok := s.prompt("Enter category (Standard/Deluxe/Suite): ")
	if !ok {
		return
	}
	checkIn, ok := s.readDate("Check-in date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	checkOut, ok := s.readDate("Check-out date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	metrics.IncSearch()
	available := s.svc.SearchAvailable(category, checkIn, checkOut)
	if len(available) == 0 {
		s.printf("No rooms available for that period.\n")
		return
	}
	s.printf("Available rooms:\n")
	for _, r := range available {
		s.printf("  %s\n", r)
	}
}

func (s *Session) doBook() {
	name, ok := s.prompt("Your name: ")
	if !ok {
		return
	}
	roomLine, ok := s.prompt("Room number: ")
	if !ok {
		return
	}
	roomNumber, err := strconv.Atoi(roomLine)
	if err != nil {
		s.printf("Invalid number input.\n")
		return
	}
	checkIn, ok := s.readDate("Check-in date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	checkOut, ok := s.readDate("Check-out date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	// Quote first; the ledger only commits after the guest confirms.
	room, found := s.svc.Room(roomNumber)
	if !found {
		s.printf("Error: room not found: %d\n", roomNumber)
		return
	}
	if !checkOut.After(checkIn) {
		s.printf("Error: check-out must be after check-in\n")
		return
	}
	if !s.svc.IsAvailable(roomNumber, checkIn, checkOut) {
		s.printf("Room not available for those dates.\n")
		return
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	total := float64(nights) * room.PricePerNight
	answer, ok := s.prompt(fmt.Sprintf("Total price: %.2f. Proceed to payment? (y/n): ", total))
	if !ok || !strings.EqualFold(answer, "y") {
		s.printf("Booking cancelled by user.\n")
		return
	}

	s.printf("Processing payment...\n")
	if s.paymentDelay > 0 {
		time.Sleep(s.paymentDelay)
	}

	result, err := s.svc.Book(name, roomNumber, checkIn, checkOut)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if result.Unavailable {
		s.printf("Room not available for those dates.\n")
		return
	}
	s.printf("Payment successful.\n")
	s.printf("Booking confirmed: %s\n", result.Reservation.ID)
}

func (s *Session) doCancel() {
	id, ok := s.prompt("Enter reservation ID to cancel: ")
	if !ok {
		return
	}
	if _, found := s.svc.Reservation(id); !found {
		s.printf("Reservation not found.\n")
		return
	}
	answer, ok := s.prompt(fmt.Sprintf("Are you sure you want to cancel reservation %s? (y/n): ", id))
	if !ok || !strings.EqualFold(answer, "y") {
		s.printf("Cancellation aborted.\n")
		return
	}
	if s.svc.Cancel(id) {
		s.printf("Cancelled.\n")
	} else {
		s.printf("Cancel failed.\n")
	}
}

func (s *Session) doView() {
	id, ok := s.prompt("Enter reservation ID: ")
	if !ok {
		return
	}
	res, found := s.svc.Reservation(id)
	if !found {
		s.printf("Not found.\n")
		return
	}
	s.printf("%s\n", &res)
}

func (s *Session) listRooms() {
	s.printf("All rooms:\n")
	for _, r := range s.svc.Rooms() {
		s.printf("  %s\n", r)
	}
}

func (s *Session) listReservations() {
	s.printf("Reservations:\n")
	for _, r := range s.svc.Reservations() {
		s.printf("  %s\n", &r)
	}
}

func (s *Session) doExport() {
	if err := export.Write(s.exportPath, s.svc.Rooms(), s.svc.Reservations()); err != nil {
		s.printf("Export failed: %v\n", err)
		return
	}
	s.printf("Report written to %s\n", s.exportPath)
}

// readDate re-prompts until the line parses as YYYY-MM-DD. Only input
// exhaustion breaks the loop.
func (s *Session) readDate(promptText string) (time.Time, bool) {
	for {
		line, ok := s.prompt(promptText)
		if !ok {
			return time.Time{}, false
		}
		d, err := time.Parse(model.DateLayout, line)
		if err != nil {
			s.printf("Bad date format, please use YYYY-MM-DD.\n")
			continue
		}
		return d, true
	}
}

func (s *Session) prompt(text string) (string, bool) {
	s.printf("%s", text)
	return s.readLine()
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
