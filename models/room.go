package models

// Room is keyed by its number; the number is both the primary key and the
// business key, so there is no surrogate id.
type Room struct {
	Number        int     `gorm:"primaryKey;autoIncrement:false;column:number" json:"number"`
	PricePerNight float64 `gorm:"column:price_per_night;not null" json:"price_per_night"`
	Description   string  `gorm:"size:1000" json:"description"`
}
