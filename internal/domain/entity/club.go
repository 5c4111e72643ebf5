package entity

import "time"

// Club schedule days and age brackets are stored as bitmasks so overlap
// filters stay portable SQL (`day_mask & ? <> 0`) on both postgres and the
// sqlite driver used in tests. Bit i of DayMask is weekday i (0 = Monday);
// bit i of AgeMask is the i*10s age bracket (bit 2 = twenties).
type Club struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"not null"`
	DayMask      int    `gorm:"not null;default:0"`
	AgeMask      int    `gorm:"not null;default:0"`
	MemberCount  int    `gorm:"not null;default:0"`
	Introduction string
	StartTime    int
	EndTime      int
	ImageURL     string
	AccountID    uint `gorm:"index;not null"`
	Account      *Account
	SportsID     uint `gorm:"index;not null"`
	Sports       *Sports
	AreaID       uint `gorm:"index;not null"`
	Area         *Area
	Status       Status `gorm:"index;not null;default:'VALID'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DayMask folds weekday numbers (0..6) into the bitmask form.
func DayMask(days []int) int {
	mask := 0
	for _, d := range days {
		if d >= 0 && d <= 6 {
			mask |= 1 << d
		}
	}
	return mask
}

// AgeMask folds age-decade values (20, 30, ...) into the bitmask form.
func AgeMask(ages []int) int {
	mask := 0
	for _, a := range ages {
		bracket := a / 10
		if bracket >= 1 && bracket <= 10 {
			mask |= 1 << bracket
		}
	}
	return mask
}

// AccountClubRelation carries the per-viewer pin (favorite) flag for a club.
type AccountClubRelation struct {
	ID        uint `gorm:"primaryKey"`
	AccountID uint `gorm:"index;not null"`
	Account   *Account
	ClubID    uint `gorm:"index;not null"`
	Club      *Club
	IsPinUp   bool   `gorm:"not null;default:false"`
	Status    Status `gorm:"index;not null;default:'VALID'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
