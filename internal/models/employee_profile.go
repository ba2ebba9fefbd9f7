package models

import "time"

// EmployeeProfile is what the search endpoint scans. Skills and availability
// are free text; Location holds a "lat,lon" pair that is only parsed at
// search time.
type EmployeeProfile struct {
	ID           uint    `gorm:"primaryKey"`
	UserID       uint    `gorm:"not null;index"`
	User         *User   `gorm:"foreignKey:UserID"`
	Skills       string  `gorm:"size:500;not null"`
	Availability string  `gorm:"size:200;not null"`
	PayRate      float64 `gorm:"not null"`
	Location     string  `gorm:"size:100;not null"`
	Preferences  string  `gorm:"size:500"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
