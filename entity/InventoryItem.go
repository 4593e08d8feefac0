package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type InventoryItem struct {
	Base
	Name          string          `gorm:"not null" json:"name"`
	Quantity      int             `json:"quantity"`
	PurchaseDate  datatypes.Date  `json:"purchaseDate"`
	PurchasePrice decimal.Decimal `gorm:"type:varchar(32);not null" json:"purchasePrice"`
	ExpiryDate    *time.Time      `json:"expiryDate"`
	HasNoExpiry   bool            `gorm:"not null;default:false" json:"hasNoExpiry"`
}

// IsExpired reports whether the item went off strictly before now.
// Items flagged with no expiry never expire, whatever ExpiryDate holds.
func (i *InventoryItem) IsExpired(now time.Time) bool {
	if i.HasNoExpiry || i.ExpiryDate == nil {
		return false
	}
	return i.ExpiryDate.Before(now)
}
