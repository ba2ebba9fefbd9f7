package models

import "time"

type Business struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   uint   `gorm:"not null;index"`
	Owner     *User  `gorm:"foreignKey:OwnerID"`
	Name      string `gorm:"size:100;not null"`
	Location  string `gorm:"size:100;not null"` // "lat,lon"
	Region    string `gorm:"size:100;not null"`
	State     string `gorm:"size:50;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
