package entity

import "time"

// Extra is a descriptive tag attachable to a club (amenity, feature).
type Extra struct {
	ID        uint   `gorm:"primaryKey"`
	Info      string `gorm:"not null"`
	Status    Status `gorm:"index;not null;default:'VALID'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClubExtraRelation struct {
	ID        uint `gorm:"primaryKey"`
	ClubID    uint `gorm:"index;not null"`
	Club      *Club
	ExtraID   uint `gorm:"index;not null"`
	Extra     *Extra
	Status    Status `gorm:"index;not null;default:'VALID'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
