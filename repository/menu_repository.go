// repository/menu_repository.go
package repository

import (
	"pos-backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GET /menu → active items, newest first
func (r *MenuRepository) FindActive() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

// FindByID ignores isActive: an inactive item still resolves for old orders.
func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

// DELETE /menu/:id → soft delete
func (r *MenuRepository) Deactivate(id uint) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
