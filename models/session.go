package models

import "time"

// Session is the server-side record behind a login cookie. The cookie itself
// only carries a signed reference to this row, so revoking the row kills the
// session regardless of what the client still holds.
type Session struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  string    `gorm:"size:20;index;not null" json:"username"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
