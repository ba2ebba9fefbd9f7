package models

import "time"

type UserRole string

// Known roles. Signup stores the role string as sent; these constants exist
// for token claims and callers that want to branch on role.
const (
	RoleOwner    UserRole = "owner"
	RoleEmployee UserRole = "employee"
	RoleAgency   UserRole = "agency"
)

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"size:100;not null"`
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:50;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
