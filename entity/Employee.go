package entity

import (
	"gorm.io/datatypes"
)

type EmployeeStatus string

const (
	EmployeeWorking    EmployeeStatus = "working"
	EmployeeNotWorking EmployeeStatus = "not working"
)

func (s EmployeeStatus) Valid() bool {
	return s == EmployeeWorking || s == EmployeeNotWorking
}

type Employee struct {
	Base
	Name        string         `gorm:"not null" json:"name"`
	NationalID  string         `gorm:"uniqueIndex;not null" json:"nationalId"`
	Phone       string         `gorm:"not null" json:"phone"`
	JoiningDate datatypes.Date `json:"joiningDate"`
	Status      EmployeeStatus `gorm:"type:varchar(20);not null;default:working" json:"status"`
}
