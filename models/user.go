package models

import "time"

// Role identifies the privilege level of a user account
const (
	RoleAdmin = 1
	RoleUser  = 2
)

// Canned user-facing responses shared across handlers
const (
	FailureResponse        = "There was a problem processing your request. Please try again later"
	InsufficientPrivileges = "You must be a System Admin to access this API"
	LoginPrompt            = "To access this API, please login to your account at /login"
	BadCredentials         = "Password or username is incorrect"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Role         int       `json:"role" gorm:"not null;default:2"` // 1=admin 2=user
	Image        string    `json:"image" gorm:"not null"`          // link
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "user" }
