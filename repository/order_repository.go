package repository

import (
	"time"

	"pos-backend/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func withLines(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Lines.MenuItem")
}

// POST /orders → insert order + lines (inside caller's transaction)
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GET /orders/:id
func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := withLines(r.DB).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders → newest first
func (r *OrderRepository) ListOrders() ([]entity.Order, error) {
	var out []entity.Order
	err := withLines(r.DB).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// PUT /orders/:id/status → overwrite without guard
func (r *OrderRepository) UpdateStatus(id uint, status entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// OrderTotalRow is the projection the sales aggregator works on.
type OrderTotalRow struct {
	ID        uint
	CreatedAt time.Time
	Total     decimal.Decimal
}

// Totals are summed in Go; the column is a decimal string.
func (r *OrderRepository) ListTotals() ([]OrderTotalRow, error) {
	var rows []OrderTotalRow
	err := r.DB.Model(&entity.Order{}).
		Select("id, created_at, total").
		Scan(&rows).Error
	return rows, err
}
