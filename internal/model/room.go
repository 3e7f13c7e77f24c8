package model

import "fmt"

// Room represents a bookable hotel room. Rooms are immutable once created;
// the catalog replaces the whole record on re-add.
type Room struct {
	Number        int     `json:"number"`
	Category      string  `json:"category"`
	PricePerNight float64 `json:"price_per_night"`
}

func (r Room) String() string {
	return fmt.Sprintf("Room %d (%s) - %.2f/night", r.Number, r.Category, r.PricePerNight)
}
