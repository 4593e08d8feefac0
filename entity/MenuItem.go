package entity

import (
	"github.com/shopspring/decimal"
)

type MenuItem struct {
	Base
	Name            string          `gorm:"not null" json:"name"`
	Price           decimal.Decimal `gorm:"type:varchar(32);not null" json:"price"`
	Description     string          `json:"description"`
	PreparationTime int             `json:"preparationTime"` // minutes
	Image           string          `json:"image"`

	// soft delete: inactive items stay resolvable from old orders
	IsActive bool `gorm:"not null;default:true;index" json:"isActive"`
}
