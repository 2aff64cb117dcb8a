package models

import "time"

// Session is an opaque bearer token resolved on every request.
// Expiry is checked at lookup time; expired rows are removed on sight
// and swept periodically.
type Session struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	ExpiryDate time.Time `gorm:"not null" json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Session) TableName() string {
	return "user_session"
}
