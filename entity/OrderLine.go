package entity

import (
	"github.com/shopspring/decimal"
)

// OrderLine is owned by its Order. Name and Price are copied from the menu
// item when the order is placed; MenuItem is joined on read for display only.
type OrderLine struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index;not null" json:"orderId"`

	MenuItemID uint      `gorm:"not null;index" json:"menuItemId"`
	MenuItem   *MenuItem `json:"menuItem,omitempty"`

	Name      string          `json:"name"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:varchar(32);not null" json:"price"`
	LineTotal decimal.Decimal `gorm:"type:varchar(32);not null" json:"lineTotal"`
}
