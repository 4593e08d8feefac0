package repository

import (
	"pos-backend/entity"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) FindAll() ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	err := r.DB.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *InventoryRepository) FindByID(id uint) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	if err := r.DB.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// FindPerishable returns items that carry an expiry date; the date itself
// is compared by the caller.
func (r *InventoryRepository) FindPerishable() ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	err := r.DB.
		Where("has_no_expiry = ? AND expiry_date IS NOT NULL", false).
		Order("expiry_date ASC").
		Find(&out).Error
	return out, err
}

func (r *InventoryRepository) Create(it *entity.InventoryItem) error {
	return r.DB.Create(it).Error
}

func (r *InventoryRepository) Update(it *entity.InventoryItem) error {
	return r.DB.Save(it).Error
}

func (r *InventoryRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.InventoryItem{}, id)
	return res.RowsAffected, res.Error
}
