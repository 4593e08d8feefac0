package services

import (
	"testing"
	"time"

	"pos-backend/configs"
	"pos-backend/entity"
	"pos-backend/pkg/logger"
	"pos-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.ConnectionDB(&configs.Config{DBDriver: "sqlite", DBSource: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type recordedEvent struct {
	event   string
	orderID uint
	status  entity.OrderStatus
}

type recorder struct{ events []recordedEvent }

func (r *recorder) Publish(event string, o *entity.Order) {
	r.events = append(r.events, recordedEvent{event: event, orderID: o.ID, status: o.Status})
}

func newOrderService(t *testing.T, db *gorm.DB, events OrderEvents) *OrderService {
	t.Helper()
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		events, decimal.NewFromInt(14), logger.Discard())
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Price: decimal.NewFromInt(price), Description: name, PreparationTime: 5, IsActive: true}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return m
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }
