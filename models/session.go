package models

import "time"

// Session is the server-side record behind a login cookie. The cookie only
// carries the session id (wrapped in a signed token); deleting the row ends
// the session regardless of what the client still holds.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Session) TableName() string { return "session" }
