package entity

import "time"

// Sports is a static reference row.
type Sports struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Status    Status `gorm:"index;not null;default:'VALID'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountSportsRelation joins an account to a sport with a self-assessed
// skill level. Rows are append-only: resubmitting a profile adds new rows
// next to the old ones.
type AccountSportsRelation struct {
	ID        uint `gorm:"primaryKey"`
	AccountID uint `gorm:"index;not null"`
	Account   *Account
	SportsID  uint `gorm:"index;not null"`
	Sports    *Sports
	Level     int
	Status    Status `gorm:"index;not null;default:'VALID'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
