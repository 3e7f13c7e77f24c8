package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hotelier/internal/model"
)

func TestReport_SheetsAndCells(t *testing.T) {
	report := NewReport()
	defer report.Close()

	require.NoError(t, report.AddRooms([]model.Room{
		{Number: 101, Category: "Standard", PricePerNight: 2500},
	}))
	require.NoError(t, report.AddReservations([]model.Reservation{
		{
			ID:         "R1000",
			GuestName:  "Alice",
			RoomNumber: 101,
			CheckIn:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			TotalPrice: 5000,
		},
	}))

	var buf bytes.Buffer
	require.NoError(t, report.Save(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Rooms", "Reservations"}, f.GetSheetList())

	category, err := f.GetCellValue("Rooms", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Standard", category)

	id, err := f.GetCellValue("Reservations", "A2")
	require.NoError(t, err)
	assert.Equal(t, "R1000", id)

	checkIn, err := f.GetCellValue("Reservations", "D2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", checkIn)
}
