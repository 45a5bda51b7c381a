package services

import (
	"time"

	"gorm.io/gorm"

	"hotel-backoffice/models"
)

// BookingService owns booking CRUD. Create and update capture the total
// price from the room's price at that moment; update replaces the room,
// dates, price and the whole guest set in one transaction, so a partial
// clear of the guest association can never be observed.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingRow is one booking list/get result. The query joins the guest
// association, so a booking with N guests yields N rows.
type BookingRow struct {
	ID         uint
	RoomNumber int
	FromDate   time.Time
	ToDate     time.Time
	TotalPrice float64
	GuestID    uint
}

type BookingInput struct {
	RoomNumber int
	FromDate   time.Time
	ToDate     time.Time
	GuestIDs   []uint
}

func (s *BookingService) listQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Booking{}).
		Select("bookings.id, bookings.room_number, bookings.from_date, bookings.to_date, " +
			"bookings.total_price, booking_guests.guest_id").
		Joins("JOIN booking_guests ON booking_guests.booking_id = bookings.id").
		Order("bookings.id, booking_guests.guest_id")
}

func (s *BookingService) List() ([]BookingRow, error) {
	var rows []BookingRow
	if err := s.listQuery(s.DB).Scan(&rows).Error; err != nil {
		return nil, translateDBError(err)
	}
	return rows, nil
}

func (s *BookingService) Get(id uint) ([]BookingRow, error) {
	var rows []BookingRow
	if err := s.listQuery(s.DB).Where("bookings.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, translateDBError(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

// resolve validates the input against the store and returns the target room
// and guest rows. The room must exist (NotFound), the range must be ordered
// and the guest list non-empty with every id known (ValidationError).
func (s *BookingService) resolve(tx *gorm.DB, in BookingInput) (models.Room, []models.Guest, error) {
	var room models.Room
	if err := tx.First(&room, "number = ?", in.RoomNumber).Error; err != nil {
		return models.Room{}, nil, translateDBError(err)
	}

	if !in.FromDate.Before(in.ToDate) {
		return models.Room{}, nil, validationErr("invalid_date_range")
	}
	if len(in.GuestIDs) == 0 {
		return models.Room{}, nil, validationErr("empty_guest_list")
	}

	var guests []models.Guest
	if err := tx.Where("id IN ?", in.GuestIDs).Find(&guests).Error; err != nil {
		return models.Room{}, nil, translateDBError(err)
	}
	known := make(map[uint]bool, len(guests))
	for _, g := range guests {
		known[g.ID] = true
	}
	for _, id := range in.GuestIDs {
		if !known[id] {
			return models.Room{}, nil, validationErr("unknown_guest")
		}
	}
	return room, guests, nil
}

func nights(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func (s *BookingService) Create(in BookingInput) (uint, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, guests, err := s.resolve(tx, in)
		if err != nil {
			return err
		}

		booking = models.Booking{
			RoomNumber: in.RoomNumber,
			FromDate:   in.FromDate,
			ToDate:     in.ToDate,
			TotalPrice: float64(nights(in.FromDate, in.ToDate)) * room.PricePerNight,
			Guests:     guests,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return 0, translateDBError(err)
	}
	return booking.ID, nil
}

// Update replaces room, dates and recomputed price, and fully replaces the
// guest set. It is not a partial patch.
func (s *BookingService) Update(id uint, in BookingInput) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			return err
		}

		room, guests, err := s.resolve(tx, in)
		if err != nil {
			return err
		}

		updates := map[string]any{
			"room_number": in.RoomNumber,
			"from_date":   in.FromDate,
			"to_date":     in.ToDate,
			"total_price": float64(nights(in.FromDate, in.ToDate)) * room.PricePerNight,
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Model(&booking).Association("Guests").Replace(&guests)
	})
	return translateDBError(err)
}

func (s *BookingService) Delete(id uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&booking).Association("Guests").Clear(); err != nil {
			return err
		}
		return tx.Delete(&booking).Error
	})
	return translateDBError(err)
}
