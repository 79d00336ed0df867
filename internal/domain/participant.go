package domain

import "time"

// Participant is a registered resident. Identity is the (Name, HouseNo) pair;
// the unique index backs duplicate-registration rejection at the schema level.
type Participant struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"index:idx_participant_identity,unique"`
	HouseNo   string `gorm:"index:idx_participant_identity,unique"`
	Block     string
	MobileNo  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
