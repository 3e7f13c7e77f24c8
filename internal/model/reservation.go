package model

import (
	"fmt"
	"time"
)

// Reservation represents a confirmed room booking. CheckIn is inclusive,
// CheckOut is exclusive: the guest leaves on the checkout day and another
// stay may start that same day.
type Reservation struct {
	ID         string    `json:"id"`
	GuestName  string    `json:"guest_name"`
	RoomNumber int       `json:"room_number"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	TotalPrice float64   `json:"total_price"`
}

// Nights returns the length of the stay in whole days.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether the given range conflicts with this reservation.
// Uses half-open interval [checkIn, checkOut) semantics: two intervals
// [A, B) and [C, D) overlap if A < D && C < B, so touching stays coexist.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(r.CheckOut) && r.CheckIn.Before(checkOut)
}

// OverlapsWith checks if this reservation overlaps with another one
// for the same room.
func (r *Reservation) OverlapsWith(other *Reservation) bool {
	return r.RoomNumber == other.RoomNumber && r.Overlaps(other.CheckIn, other.CheckOut)
}

func (r *Reservation) String() string {
	return fmt.Sprintf("Reservation %s: %s | Room %d | %s -> %s | %.2f",
		r.ID, r.GuestName, r.RoomNumber,
		r.CheckIn.Format(DateLayout), r.CheckOut.Format(DateLayout), r.TotalPrice)
}

// DateLayout is the wire and console format for stay dates.
const DateLayout = "2006-01-02"
