package session

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/internal/hotel"
	"hotelier/internal/model"
	"hotelier/internal/storage"
)

var testSeeds = []model.Room{
	{Number: 101, Category: "Standard", PricePerNight: 2500},
	{Number: 102, Category: "Standard", PricePerNight: 2500},
	{Number: 301, Category: "Suite", PricePerNight: 8000},
}

// runScript feeds the input lines to a fresh session over a temp store
// and returns the console output plus the service and store for
// follow-up assertions.
func runScript(t *testing.T, input string) (string, *hotel.Service, *storage.Store) {
	t.Helper()
	dir := t.TempDir()
	store := storage.New(filepath.Join(dir, "rooms.csv"), filepath.Join(dir, "reservations.csv"), nil)
	svc := hotel.NewService(nil, nil)

	var out bytes.Buffer
	sess := New(svc, store, strings.NewReader(input), &out, nil, Options{
		Seeds:      testSeeds,
		ExportPath: filepath.Join(dir, "report.xlsx"),
	})
	sess.Run()
	return out.String(), svc, store
}

func TestSession_SeedsWhenCatalogEmpty(t *testing.T) {
	out, svc, _ := runScript(t, "5\n0\n")
	assert.Len(t, svc.Rooms(), 3)
	assert.Contains(t, out, "Room 101 (Standard) - 2500.00/night")
}

func TestSession_UnknownOption(t *testing.T) {
	out, _, _ := runScript(t, "9\n0\n")
	assert.Contains(t, out, "Unknown option")
	// Menu shown again after the bad choice
	assert.Equal(t, 2, strings.Count(out, "--- Hotel Reservation System ---"))
}

func TestSession_BookConfirmed(t *testing.T) {
	script := strings.Join([]string{
		"2",
		"Alice",
		"101",
		"2024-01-10",
		"2024-01-12",
		"y",
		"0",
	}, "\n") + "\n"

	out, svc, _ := runScript(t, script)

	assert.Contains(t, out, "Total price: 5000.00. Proceed to payment? (y/n): ")
	assert.Contains(t, out, "Payment successful.")
	assert.Contains(t, out, "Booking confirmed: R1000")

	res, ok := svc.Reservation("R1000")
	require.True(t, ok)
	assert.Equal(t, "Alice", res.GuestName)
}

func TestSession_BookDeclinedDoesNotCommit(t *testing.T) {
	script := strings.Join([]string{
		"2", "Alice", "101", "2024-01-10", "2024-01-12", "n",
		"0",
	}, "\n") + "\n"

	out, svc, _ := runScript(t, script)

	assert.Contains(t, out, "Booking cancelled by user.")
	assert.Empty(t, svc.Reservations())
}

func TestSession_BadDateReprompts(t *testing.T) {
	script := strings.Join([]string{
		"2", "Alice", "101",
		"10-01-2024", // wrong format
		"2024-01-10",
		"2024-01-12",
		"y",
		"0",
	}, "\n") + "\n"

	out, svc, _ := runScript(t, script)

	assert.Contains(t, out, "Bad date format, please use YYYY-MM-DD.")
	assert.Len(t, svc.Reservations(), 1)
}

func TestSession_BadRoomNumberAbortsAction(t *testing.T) {
	out, svc, _ := runScript(t, "2\nAlice\nabc\n0\n")
	assert.Contains(t, out, "Invalid number input.")
	assert.Empty(t, svc.Reservations())
}

func TestSession_BookTakenRoom(t *testing.T) {
	script := strings.Join([]string{
		"2", "Alice", "101", "2024-01-10", "2024-01-12", "y",
		"2", "Bob", "101", "2024-01-11", "2024-01-13",
		"0",
	}, "\n") + "\n"

	out, svc, _ := runScript(t, script)

	assert.Contains(t, out, "Room not available for those dates.")
	assert.Len(t, svc.Reservations(), 1)
}

func TestSession_SearchEmptyAndHit(t *testing.T) {
	script := strings.Join([]string{
		"1", "Penthouse", "2024-01-10", "2024-01-12",
		"1", "suite", "2024-01-10", "2024-01-12",
		"0",
	}, "\n") + "\n"

	out, _, _ := runScript(t, script)

	assert.Contains(t, out, "No rooms available for that period.")
	assert.Contains(t, out, "Room 301 (Suite) - 8000.00/night")
}

func TestSession_CancelFlow(t *testing.T) {
	script := strings.Join([]string{
		"2", "Alice", "101", "2024-01-10", "2024-01-12", "y",
		"3", "R9999", // unknown ID
		"3", "R1000", "n", // aborted
		"3", "R1000", "y", // confirmed
		"0",
	}, "\n") + "\n"

	out, svc, _ := runScript(t, script)

	assert.Contains(t, out, "Reservation not found.")
	assert.Contains(t, out, "Cancellation aborted.")
	assert.Contains(t, out, "Cancelled.")
	assert.Empty(t, svc.Reservations())
}

func TestSession_ViewReservation(t *testing.T) {
	script := strings.Join([]string{
		"2", "Alice", "101", "2024-01-10", "2024-01-12", "y",
		"4", "R1000",
		"4", "R1234",
		"0",
	}, "\n") + "\n"

	out, _, _ := runScript(t, script)

	assert.Contains(t, out, "Reservation R1000: Alice | Room 101 | 2024-01-10 -> 2024-01-12 | 5000.00")
	assert.Contains(t, out, "Not found.")
}

func TestSession_ExitSavesState(t *testing.T) {
	script := strings.Join([]string{
		"2", "Alice", "101", "2024-01-10", "2024-01-12", "y",
		"0",
	}, "\n") + "\n"

	out, _, store := runScript(t, script)
	assert.Contains(t, out, "Saved.")
	assert.Contains(t, out, "Goodbye")

	reloaded := hotel.NewService(nil, nil)
	require.NoError(t, store.Load(reloaded))
	assert.Len(t, reloaded.Rooms(), 3)

	res, ok := reloaded.Reservation("R1000")
	require.True(t, ok)
	assert.Equal(t, 5000.0, res.TotalPrice)
}

func TestSession_ExportWritesReport(t *testing.T) {
	out, _, _ := runScript(t, "7\n0\n")
	assert.Contains(t, out, "Report written to ")
}
