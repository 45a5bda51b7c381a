package models

// GivenName and FamilyName deduplicate guest name strings into stable ids.
// Rows are created lazily by the directory service and never updated or
// deleted afterwards.

type GivenName struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Value string `gorm:"uniqueIndex;size:50;not null" json:"value"`
}

type FamilyName struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Value string `gorm:"uniqueIndex;size:50;not null" json:"value"`
}
