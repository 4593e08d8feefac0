package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	Base
	CustomerName    string    `gorm:"not null" json:"customerName"`
	CustomerPhone   string    `gorm:"not null" json:"customerPhone"`
	CustomerAddress string    `gorm:"not null" json:"customerAddress"`
	OrderedAt       time.Time `gorm:"index" json:"orderedAt"`

	Status OrderStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`

	Lines []OrderLine `gorm:"constraint:OnDelete:CASCADE" json:"items"`

	Subtotal decimal.Decimal `gorm:"type:varchar(32);not null" json:"subtotal"`
	Tax      decimal.Decimal `gorm:"type:varchar(32);not null" json:"tax"`
	Discount decimal.Decimal `gorm:"type:varchar(32);not null" json:"discount"`
	Total    decimal.Decimal `gorm:"type:varchar(32);not null" json:"total"`
}
