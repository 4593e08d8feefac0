// services/order_service.go
package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"pos-backend/entity"
	"pos-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvents receives committed order changes. Publish must not block.
type OrderEvents interface {
	Publish(event string, order *entity.Order)
}

type nopEvents struct{}

func (nopEvents) Publish(string, *entity.Order) {}

// CartLine is one requested menu item and how many of it.
type CartLine struct {
	MenuItemID uint `json:"menuItem"`
	Quantity   int  `json:"quantity"`
}

// Cart lives for one request only. Lines are kept as sent; the same menu
// item may appear twice.
type Cart struct {
	Lines []CartLine
}

type CreateOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Cart            Cart

	// nil means the outlet's configured rate / no discount
	TaxRatePercent *decimal.Decimal
	Discount       *decimal.Decimal
}

func (in *CreateOrderInput) Validate() error {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.CustomerAddress = strings.TrimSpace(in.CustomerAddress)

	switch {
	case in.CustomerName == "":
		return invalid("customerName", "is required")
	case in.CustomerPhone == "":
		return invalid("customerPhone", "is required")
	case in.CustomerAddress == "":
		return invalid("customerAddress", "is required")
	case len(in.Cart.Lines) == 0:
		return invalid("items", "at least one item is required")
	}
	for _, l := range in.Cart.Lines {
		if l.MenuItemID == 0 {
			return invalid("items", "menu item id is required")
		}
		if l.Quantity < 1 {
			return invalid("items", "quantity must be at least 1")
		}
	}
	if in.TaxRatePercent != nil && in.TaxRatePercent.IsNegative() {
		return invalid("tax", "must not be negative")
	}
	if in.Discount != nil && in.Discount.IsNegative() {
		return invalid("discount", "must not be negative")
	}
	return nil
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Events   OrderEvents
	TaxRate  decimal.Decimal
	Log      *slog.Logger
	Now      func() time.Time
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository,
	events OrderEvents, taxRate decimal.Decimal, log *slog.Logger) *OrderService {
	if events == nil {
		events = nopEvents{}
	}
	return &OrderService{
		DB:       db,
		Repo:     repo,
		MenuRepo: menuRepo,
		Events:   events,
		TaxRate:  taxRate,
		Log:      log.With("component", "orders"),
		Now:      time.Now,
	}
}

// Create prices the cart from current menu prices and stores the order with
// its lines in one transaction. Nothing is written if any line fails to resolve.
func (s *OrderService) Create(in CreateOrderInput) (*entity.Order, error) {
	if err := in.Validate(); err != nil {
		s.Log.Warn("order rejected", "error", err)
		return nil, err
	}

	rate := s.TaxRate
	if in.TaxRatePercent != nil {
		rate = *in.TaxRatePercent
	}
	discount := decimal.Zero
	if in.Discount != nil {
		discount = *in.Discount
	}

	lines := make([]entity.OrderLine, 0, len(in.Cart.Lines))
	priced := make([]PricedLine, 0, len(in.Cart.Lines))
	for _, cl := range in.Cart.Lines {
		m, err := s.MenuRepo.FindByID(cl.MenuItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.Log.Warn("order rejected", "menuItem", cl.MenuItemID, "error", "unknown menu item")
			return nil, &InvalidReferenceError{MenuItemID: cl.MenuItemID}
		}
		if err != nil {
			return nil, err
		}
		pl := PricedLine{Price: m.Price, Quantity: cl.Quantity}
		priced = append(priced, pl)
		lines = append(lines, entity.OrderLine{
			MenuItemID: m.ID,
			Name:       m.Name,
			Quantity:   cl.Quantity,
			Price:      m.Price,
			LineTotal:  pl.Total(),
		})
	}

	t := ComputeTotals(priced, rate, discount)
	now := s.Now()
	order := entity.Order{
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		OrderedAt:       now,
		Status:          entity.OrderPending,
		Lines:           lines,
		Subtotal:        t.Subtotal,
		Tax:             t.Tax,
		Discount:        t.Discount,
		Total:           t.Total,
	}
	order.CreatedAt = now

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &order)
	}); err != nil {
		s.Log.Error("store order failed", "error", err)
		return nil, err
	}

	out, err := s.Repo.GetOrder(order.ID)
	if err != nil {
		return nil, storeErr("order", err)
	}
	s.Log.Info("order placed", "orderId", out.ID, "lines", len(out.Lines), "total", out.Total.String())
	s.Events.Publish(EventOrderCreated, out)
	return out, nil
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.ListOrders()
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(id)
	if err != nil {
		return nil, storeErr("order", err)
	}
	return o, nil
}
