package entity

import "time"

// Area is a static reference row (district/region).
type Area struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Status    Status `gorm:"index;not null;default:'VALID'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
