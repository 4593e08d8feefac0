package entity

import "time"

// Base replaces gorm.Model for records that are removed for real (no DeletedAt)
// and serialised with camelCase keys.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
