package models

type Guest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GivenNameID  uint `gorm:"column:given_name_id;index" json:"given_name_id"`
	FamilyNameID uint `gorm:"column:family_name_id;index" json:"family_name_id"`

	Age int `gorm:"not null" json:"age"`

	// (series, number) is the business identity of a guest.
	PassportSeries string `gorm:"column:passport_series;size:2;not null;uniqueIndex:idx_guest_passport" json:"passport_series"`
	PassportNumber string `gorm:"column:passport_number;size:20;not null;uniqueIndex:idx_guest_passport" json:"passport_number"`

	GivenName  GivenName  `gorm:"foreignKey:GivenNameID" json:"-"`
	FamilyName FamilyName `gorm:"foreignKey:FamilyNameID" json:"-"`
}
