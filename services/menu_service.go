// services/menu_service.go
package services

import (
	"errors"
	"log/slog"
	"strings"

	"pos-backend/entity"
	"pos-backend/repository"

	"github.com/shopspring/decimal"
)

type MenuItemInput struct {
	Name            string           `json:"name"`
	Price           *decimal.Decimal `json:"price"`
	Description     string           `json:"description"`
	PreparationTime *int             `json:"preparationTime"`
	Image           string           `json:"image"`
}

func (in *MenuItemInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case in.Name == "":
		return invalid("name", "is required")
	case in.Price == nil:
		return invalid("price", "is required")
	case in.Price.IsNegative():
		return invalid("price", "must not be negative")
	case in.Description == "":
		return invalid("description", "is required")
	case in.PreparationTime == nil:
		return invalid("preparationTime", "is required")
	case *in.PreparationTime < 0:
		return invalid("preparationTime", "must not be negative")
	}
	return nil
}

func (in *MenuItemInput) apply(m *entity.MenuItem) {
	m.Name = in.Name
	m.Price = *in.Price
	m.Description = in.Description
	m.PreparationTime = *in.PreparationTime
	m.Image = strings.TrimSpace(in.Image)
}

type MenuService struct {
	Repo *repository.MenuRepository
	Log  *slog.Logger
}

func NewMenuService(repo *repository.MenuRepository, log *slog.Logger) *MenuService {
	return &MenuService{Repo: repo, Log: log.With("component", "menu")}
}

func (s *MenuService) ListActive() ([]entity.MenuItem, error) {
	return s.Repo.FindActive()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, storeErr("menu item", err)
	}
	return m, nil
}

func (s *MenuService) Create(in MenuItemInput) (*entity.MenuItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m := &entity.MenuItem{IsActive: true}
	in.apply(m)
	if err := s.Repo.Create(m); err != nil {
		return nil, storeErr("menu item", err)
	}
	s.Log.Info("menu item created", "menuItemId", m.ID, "price", m.Price.String())
	return m, nil
}

// Update replaces the editable fields; orders already placed keep their snapshot price.
func (s *MenuService) Update(id uint, in MenuItemInput) (*entity.MenuItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, storeErr("menu item", err)
	}
	in.apply(m)
	if err := s.Repo.Update(m); err != nil {
		return nil, storeErr("menu item", err)
	}
	return m, nil
}

// Delete only hides the item from the menu.
func (s *MenuService) Delete(id uint) error {
	n, err := s.Repo.Deactivate(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound("menu item")
	}
	s.Log.Info("menu item deactivated", "menuItemId", id)
	return nil
}

// ImportRow is one parsed spreadsheet row; Row is the 1-based sheet row.
type ImportRow struct {
	Row   int
	Input MenuItemInput
}

type ImportResult struct {
	Created int          `json:"created"`
	Skipped []SkippedRow `json:"skipped"`
}

type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Import creates one menu item per row. Rows that fail validation are
// reported and skipped; a store failure stops the import.
func (s *MenuService) Import(rows []ImportRow) (*ImportResult, error) {
	res := &ImportResult{Skipped: []SkippedRow{}}
	for _, r := range rows {
		if _, err := s.Create(r.Input); err != nil {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				return res, err
			}
			res.Skipped = append(res.Skipped, SkippedRow{Row: r.Row, Reason: ve.Error()})
			continue
		}
		res.Created++
	}
	s.Log.Info("menu imported", "created", res.Created, "skipped", len(res.Skipped))
	return res, nil
}
