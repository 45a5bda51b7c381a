package services

import (
	"gorm.io/gorm"

	"hotel-backoffice/models"
)

// RoomService performs room CRUD directly on the business key (the room
// number).
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomInput struct {
	Number        int     `json:"number"`
	PricePerNight float64 `json:"price_per_night"`
	Description   string  `json:"description"`
}

func (in RoomInput) validate() error {
	switch {
	case in.Number <= 0:
		return validationErr("invalid_room_number")
	case in.PricePerNight < 0:
		return validationErr("invalid_price")
	case len(in.Description) > 1000:
		return validationErr("description_too_long")
	}
	return nil
}

func (s *RoomService) Get(number int) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, "number = ?", number).Error; err != nil {
		return models.Room{}, translateDBError(err)
	}
	return room, nil
}

func (s *RoomService) Create(in RoomInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	room := models.Room{
		Number:        in.Number,
		PricePerNight: in.PricePerNight,
		Description:   in.Description,
	}
	return translateDBError(s.DB.Create(&room).Error)
}

func (s *RoomService) Update(number int, in RoomInput) error {
	in.Number = number
	if err := in.validate(); err != nil {
		return err
	}
	res := s.DB.Model(&models.Room{}).Where("number = ?", number).Updates(map[string]any{
		"price_per_night": in.PricePerNight,
		"description":     in.Description,
	})
	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the room. Existing bookings referencing the number are not
// blocked, matching the store's declared behavior.
func (s *RoomService) Delete(number int) error {
	res := s.DB.Delete(&models.Room{}, "number = ?", number)
	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
