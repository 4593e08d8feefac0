package services

import (
	"log/slog"
	"strings"
	"time"

	"pos-backend/entity"
	"pos-backend/repository"
	"pos-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type InventoryInput struct {
	Name          string           `json:"name"`
	Quantity      *int             `json:"quantity"`
	PurchaseDate  string           `json:"purchaseDate"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	ExpiryDate    string           `json:"expiryDate"`
	HasNoExpiry   bool             `json:"hasNoExpiry"`
}

// build validates the input into a fresh record. A no-expiry item never
// keeps an expiry date, whatever the client sent.
func (in *InventoryInput) build() (*entity.InventoryItem, error) {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return nil, invalid("name", "is required")
	case in.Quantity == nil:
		return nil, invalid("quantity", "is required")
	case *in.Quantity < 0:
		return nil, invalid("quantity", "must not be negative")
	case in.PurchasePrice == nil:
		return nil, invalid("purchasePrice", "is required")
	case in.PurchasePrice.IsNegative():
		return nil, invalid("purchasePrice", "must not be negative")
	}

	bought, err := utils.ParseDateFlexible(in.PurchaseDate, nil)
	if err != nil {
		return nil, invalid("purchaseDate", err.Error())
	}
	if bought == nil {
		return nil, invalid("purchaseDate", "is required")
	}

	it := &entity.InventoryItem{
		Name:          name,
		Quantity:      *in.Quantity,
		PurchaseDate:  datatypes.Date(*bought),
		PurchasePrice: *in.PurchasePrice,
		HasNoExpiry:   in.HasNoExpiry,
	}
	if !in.HasNoExpiry {
		exp, err := utils.ParseDateFlexible(in.ExpiryDate, nil)
		if err != nil {
			return nil, invalid("expiryDate", err.Error())
		}
		it.ExpiryDate = exp
	}
	return it, nil
}

type InventoryService struct {
	Repo *repository.InventoryRepository
	Log  *slog.Logger
	Now  func() time.Time
}

func NewInventoryService(repo *repository.InventoryRepository, log *slog.Logger) *InventoryService {
	return &InventoryService{Repo: repo, Log: log.With("component", "inventory"), Now: time.Now}
}

func (s *InventoryService) List() ([]entity.InventoryItem, error) {
	return s.Repo.FindAll()
}

func (s *InventoryService) Get(id uint) (*entity.InventoryItem, error) {
	it, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, storeErr("inventory item", err)
	}
	return it, nil
}

func (s *InventoryService) Create(in InventoryInput) (*entity.InventoryItem, error) {
	it, err := in.build()
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(it); err != nil {
		return nil, storeErr("inventory item", err)
	}
	s.Log.Info("inventory item created", "itemId", it.ID)
	return it, nil
}

func (s *InventoryService) Update(id uint, in InventoryInput) (*entity.InventoryItem, error) {
	next, err := in.build()
	if err != nil {
		return nil, err
	}
	cur, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, storeErr("inventory item", err)
	}
	next.Base = cur.Base
	if err := s.Repo.Update(next); err != nil {
		return nil, storeErr("inventory item", err)
	}
	return next, nil
}

func (s *InventoryService) Delete(id uint) error {
	n, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound("inventory item")
	}
	return nil
}

// Expired lists items whose expiry date is strictly before now.
func (s *InventoryService) Expired() ([]entity.InventoryItem, error) {
	items, err := s.Repo.FindPerishable()
	if err != nil {
		return nil, err
	}
	now := s.Now()
	out := make([]entity.InventoryItem, 0, len(items))
	for i := range items {
		if items[i].IsExpired(now) {
			out = append(out, items[i])
		}
	}
	return out, nil
}
