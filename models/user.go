package models

import "time"

type UserAccount struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:60;not null" json:"-"`
	Gender       string    `gorm:"size:1;not null" json:"gender"` // "M" | "F"
	Weight       float64   `gorm:"not null" json:"weight"`
	Birthdate    time.Time `gorm:"not null" json:"birthdate"`
	CreatedAt    time.Time `json:"created_at"`
}

func (UserAccount) TableName() string {
	return "user_account"
}
