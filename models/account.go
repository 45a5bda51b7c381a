package models

// Account is a back-office login. PasswordHash holds a passlib-style
// pbkdf2_sha256 string and is never returned in JSON.
type Account struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:20;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;size:100;not null" json:"-"`
}
