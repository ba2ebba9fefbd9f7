package models

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReviewerID uint      `gorm:"not null;index" json:"reviewer_id"`
	ReviewedID uint      `gorm:"not null;index" json:"reviewed_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"size:500" json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
