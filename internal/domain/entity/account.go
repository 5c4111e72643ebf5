package entity

import "time"

type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// Account holds both password and social accounts. Email and nickname are not
// unique at the database level: uniqueness is scoped to VALID rows, so a
// withdrawn account may re-register with the same values.
type Account struct {
	ID           uint   `gorm:"primaryKey"`
	OAuthID      string `gorm:"index;not null"`
	Email        string `gorm:"index;not null"`
	Nickname     string `gorm:"index"`
	Password     string `gorm:"not null"`
	Role         Role   `gorm:"not null;default:'ROLE_USER'"`
	Gender       string
	Introduction string
	AreaID       *uint
	Area         *Area  `gorm:"foreignKey:AreaID"`
	Status       Status `gorm:"index;not null;default:'VALID'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
