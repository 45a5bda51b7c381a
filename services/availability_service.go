package services

import (
	"time"

	"gorm.io/gorm"

	"hotel-backoffice/models"
)

// RoomState selects how QueryRooms classifies the catalogue.
type RoomState string

const (
	// RoomStateAny returns the full room catalogue with no booking join
	// and no date evaluation.
	RoomStateAny RoomState = ""
	// RoomStateFree returns rooms joined against bookings that do not
	// overlap the evaluation instant. The join is against existing booking
	// rows, so a room that has never been booked does not appear.
	RoomStateFree RoomState = "free"
	// RoomStateOccupied returns one row per overlapping booking-guest
	// pair: a room with two guests on one overlapping booking yields two
	// rows.
	RoomStateOccupied RoomState = "occupied"
)

// AvailabilityService classifies rooms as free or occupied at an instant.
// A booking overlaps the instant iff from_date < at < to_date; both
// boundaries are exclusive, so a booking ending or starting exactly on the
// instant does not occupy it.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// RoomRow is one availability/catalogue result, keyed by the room's own
// columns only.
type RoomRow struct {
	Number        int
	PricePerNight float64
	Description   string
}

// QueryRooms classifies the catalogue at the given instant. A zero at means
// "now". roomNumber, when non-nil, narrows the classified rows to that room.
func (s *AvailabilityService) QueryRooms(state RoomState, at time.Time, roomNumber *int) ([]RoomRow, error) {
	if at.IsZero() {
		at = time.Now().UTC()
	}

	q := s.DB.Model(&models.Room{}).
		Select("rooms.number, rooms.price_per_night, rooms.description").
		Order("rooms.number")

	switch state {
	case RoomStateOccupied:
		q = q.
			Joins("JOIN bookings ON bookings.room_number = rooms.number").
			Joins("JOIN booking_guests ON booking_guests.booking_id = bookings.id").
			Where("bookings.from_date < ? AND bookings.to_date > ?", at, at)
	case RoomStateFree:
		q = q.
			Joins("JOIN bookings ON bookings.room_number = rooms.number").
			Where("bookings.from_date >= ? OR bookings.to_date <= ?", at, at)
	}

	if roomNumber != nil {
		q = q.Where("rooms.number = ?", *roomNumber)
	}

	var rows []RoomRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, translateDBError(err)
	}
	return rows, nil
}
