package models

import "time"

// Booking reserves one room for a half-open date range [FromDate, ToDate).
// TotalPrice is captured at write time from the room's price and is never
// re-derived when the room price changes later.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber int       `gorm:"column:room_number;index" json:"room_number"`
	FromDate   time.Time `gorm:"column:from_date;type:date;not null" json:"from_date"`
	ToDate     time.Time `gorm:"column:to_date;type:date;not null" json:"to_date"`
	TotalPrice float64   `gorm:"column:total_price;not null" json:"total_price"`

	Room   Room    `gorm:"foreignKey:RoomNumber;references:Number" json:"room,omitempty"`
	Guests []Guest `gorm:"many2many:booking_guests" json:"guests,omitempty"`
}
