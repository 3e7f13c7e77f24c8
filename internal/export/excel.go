// Package export renders the current catalog and ledger into an Excel
// workbook, one sheet per record stream.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hotelier/internal/model"
)

// Report builds the workbook sheet by sheet.
type Report struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{file: excelize.NewFile()}
}

// AddRooms writes the catalog to a "Rooms" sheet.
func (r *Report) AddRooms(rooms []model.Room) error {
	if err := r.addSheet("Rooms"); err != nil {
		return err
	}
	if err := r.writeHeader([]string{"Number", "Category", "Price per night"}); err != nil {
		return err
	}
	for _, room := range rooms {
		if err := r.writeRow([]interface{}{room.Number, room.Category, room.PricePerNight}); err != nil {
			return err
		}
	}
	return nil
}

// AddReservations writes the ledger to a "Reservations" sheet.
func (r *Report) AddReservations(reservations []model.Reservation) error {
	if err := r.addSheet("Reservations"); err != nil {
		return err
	}
	header := []string{"ID", "Guest", "Room", "Check-in", "Check-out", "Total"}
	if err := r.writeHeader(header); err != nil {
		return err
	}
	for _, res := range reservations {
		row := []interface{}{
			res.ID,
			res.GuestName,
			res.RoomNumber,
			res.CheckIn.Format(model.DateLayout),
			res.CheckOut.Format(model.DateLayout),
			res.TotalPrice,
		}
		if err := r.writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

func (r *Report) addSheet(name string) error {
	// Excel caps sheet names at 31 chars
	if len(name) > 31 {
		name = name[:31]
	}

	if r.currentSheet == "" {
		// Rename the default sheet
		if err := r.file.SetSheetName("Sheet1", name); err != nil {
			return err
		}
	} else {
		if _, err := r.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	r.currentSheet = name
	r.currentRow = 1
	return nil
}

func (r *Report) writeHeader(columns []string) error {
	row := make([]interface{}, len(columns))
	for i, col := range columns {
		row[i] = col
	}
	if err := r.writeRow(row); err != nil {
		return err
	}

	style, err := r.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, r.currentRow-1)
		endCell, _ := excelize.CoordinatesToCellName(len(columns), r.currentRow-1)
		_ = r.file.SetCellStyle(r.currentSheet, startCell, endCell, style)
	}
	return nil
}

func (r *Report) writeRow(row []interface{}) error {
	if r.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}

	for i, val := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, r.currentRow)
		if err != nil {
			return err
		}
		if err := r.file.SetCellValue(r.currentSheet, cell, val); err != nil {
			return err
		}
	}

	r.currentRow++
	return nil
}

// Save writes the workbook to the writer.
func (r *Report) Save(w io.Writer) error {
	return r.file.Write(w)
}

// SaveToFile writes the workbook to disk.
func (r *Report) SaveToFile(path string) error {
	return r.file.SaveAs(path)
}

// Close releases resources.
func (r *Report) Close() error {
	return r.file.Close()
}

// Write renders rooms and reservations and saves the workbook in one
// call; this is what the session invokes.
func Write(path string, rooms []model.Room, reservations []model.Reservation) error {
	report := NewReport()
	defer report.Close()

	if err := report.AddRooms(rooms); err != nil {
		return err
	}
	if err := report.AddReservations(reservations); err != nil {
		return err
	}
	return report.SaveToFile(path)
}
