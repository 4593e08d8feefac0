package services

import (
	"log/slog"
	"strings"
	"time"

	"pos-backend/entity"
	"pos-backend/repository"
	"pos-backend/utils"

	"gorm.io/datatypes"
)

type EmployeeInput struct {
	Name        string `json:"name"`
	NationalID  string `json:"nationalId"`
	CNIC        string `json:"cnic"` // older clients send the id under this key
	Phone       string `json:"phone"`
	JoiningDate string `json:"joiningDate"`
	Status      string `json:"status"`
}

type employeeFields struct {
	name, nationalID, phone string
	joined                  time.Time
	status                  entity.EmployeeStatus
}

func (in *EmployeeInput) parse() (*employeeFields, error) {
	f := &employeeFields{
		name:       strings.TrimSpace(in.Name),
		nationalID: strings.TrimSpace(in.NationalID),
		phone:      strings.TrimSpace(in.Phone),
		status:     entity.EmployeeStatus(strings.TrimSpace(in.Status)),
	}
	if f.nationalID == "" {
		f.nationalID = strings.TrimSpace(in.CNIC)
	}
	switch {
	case f.name == "":
		return nil, invalid("name", "is required")
	case f.nationalID == "":
		return nil, invalid("nationalId", "is required")
	case f.phone == "":
		return nil, invalid("phone", "is required")
	}

	joined, err := utils.ParseDateFlexible(in.JoiningDate, nil)
	if err != nil {
		return nil, invalid("joiningDate", err.Error())
	}
	if joined == nil {
		return nil, invalid("joiningDate", "is required")
	}
	f.joined = *joined

	if f.status != "" && !f.status.Valid() {
		return nil, invalid("status", `must be "working" or "not working"`)
	}
	return f, nil
}

type EmployeeService struct {
	Repo *repository.EmployeeRepository
	Log  *slog.Logger
}

func NewEmployeeService(repo *repository.EmployeeRepository, log *slog.Logger) *EmployeeService {
	return &EmployeeService{Repo: repo, Log: log.With("component", "employees")}
}

func (s *EmployeeService) List() ([]entity.Employee, error) {
	return s.Repo.FindAll()
}

func (s *EmployeeService) Get(id uint) (*entity.Employee, error) {
	e, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, storeErr("employee", err)
	}
	return e, nil
}

func (s *EmployeeService) ensureUniqueNationalID(nationalID string, exceptID uint) error {
	n, err := s.Repo.CountByNationalID(nationalID, exceptID)
	if err != nil {
		return err
	}
	if n > 0 {
		s.Log.Warn("duplicate national id", "employeeId", exceptID)
		return duplicate("employee with this national id")
	}
	return nil
}

func (s *EmployeeService) Create(in EmployeeInput) (*entity.Employee, error) {
	f, err := in.parse()
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueNationalID(f.nationalID, 0); err != nil {
		return nil, err
	}
	if f.status == "" {
		f.status = entity.EmployeeWorking
	}

	e := &entity.Employee{
		Name:        f.name,
		NationalID:  f.nationalID,
		Phone:       f.phone,
		JoiningDate: datatypes.Date(f.joined),
		Status:      f.status,
	}
	if err := s.Repo.Create(e); err != nil {
		return nil, storeErr("employee with this national id", err)
	}
	s.Log.Info("employee created", "employeeId", e.ID)
	return e, nil
}

// Update replaces every field; an empty status keeps the current one.
func (s *EmployeeService) Update(id uint, in EmployeeInput) (*entity.Employee, error) {
	f, err := in.parse()
	if err != nil {
		return nil, err
	}
	e, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, storeErr("employee", err)
	}
	if err := s.ensureUniqueNationalID(f.nationalID, id); err != nil {
		return nil, err
	}

	e.Name = f.name
	e.NationalID = f.nationalID
	e.Phone = f.phone
	e.JoiningDate = datatypes.Date(f.joined)
	if f.status != "" {
		e.Status = f.status
	}
	if err := s.Repo.Update(e); err != nil {
		return nil, storeErr("employee with this national id", err)
	}
	return e, nil
}

func (s *EmployeeService) Delete(id uint) error {
	n, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound("employee")
	}
	s.Log.Info("employee deleted", "employeeId", id)
	return nil
}
