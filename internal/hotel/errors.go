// Package hotel holds the room catalog and the reservation ledger behind
// a single service. The sentinel errors below cover domain validation
// failures; an occupied room is not an error but a normal Unavailable
// booking result, so callers can branch on "try another room" separately
// from "the input was wrong".
package hotel

import "errors"

// ErrRoomNotFound is returned when a booking names a room number that is
// not in the catalog.
var ErrRoomNotFound = errors.New("room not found")

// ErrInvalidRange is returned when the requested check-out date is not
// strictly after the check-in date.
var ErrInvalidRange = errors.New("check-out must be after check-in")
