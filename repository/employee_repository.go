package repository

import (
	"pos-backend/entity"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	DB *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) FindAll() ([]entity.Employee, error) {
	var out []entity.Employee
	err := r.DB.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *EmployeeRepository) FindByID(id uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// CountByNationalID counts other employees holding the id; exceptID 0 checks everyone.
func (r *EmployeeRepository) CountByNationalID(nationalID string, exceptID uint) (int64, error) {
	var n int64
	q := r.DB.Model(&entity.Employee{}).Where("national_id = ?", nationalID)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&n).Error
	return n, err
}

func (r *EmployeeRepository) Create(e *entity.Employee) error {
	return r.DB.Create(e).Error
}

func (r *EmployeeRepository) Update(e *entity.Employee) error {
	return r.DB.Save(e).Error
}

func (r *EmployeeRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Employee{}, id)
	return res.RowsAffected, res.Error
}
