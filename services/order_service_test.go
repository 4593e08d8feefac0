package services

import (
	"errors"
	"testing"
	"time"

	"pos-backend/entity"

	"github.com/shopspring/decimal"
)

func validInput(lines ...CartLine) CreateOrderInput {
	return CreateOrderInput{
		CustomerName:    "Ayesha",
		CustomerPhone:   "0300-1234567",
		CustomerAddress: "12 Mall Road",
		Cart:            Cart{Lines: lines},
	}
}

func TestCreateOrderPricesFromMenu(t *testing.T) {
	db := newTestDB(t)
	rec := &recorder{}
	svc := newOrderService(t, db, rec)
	burger := seedMenuItem(t, db, "Zinger", 500)
	fries := seedMenuItem(t, db, "Fries", 300)

	order, err := svc.Create(validInput(
		CartLine{MenuItemID: burger.ID, Quantity: 2},
		CartLine{MenuItemID: fries.ID, Quantity: 1},
	))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if order.Status != entity.OrderPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	for field, pair := range map[string][2]decimal.Decimal{
		"subtotal": {order.Subtotal, dec("1300")},
		"tax":      {order.Tax, dec("182")},
		"discount": {order.Discount, dec("0")},
		"total":    {order.Total, dec("1482")},
	} {
		if !pair[0].Equal(pair[1]) {
			t.Errorf("%s = %s, want %s", field, pair[0], pair[1])
		}
	}
	if len(order.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(order.Lines))
	}
	first := order.Lines[0]
	if first.MenuItem == nil || first.MenuItem.Name != "Zinger" {
		t.Errorf("menu item not joined: %+v", first.MenuItem)
	}
	if !first.Price.Equal(dec("500")) || !first.LineTotal.Equal(dec("1000")) || first.Name != "Zinger" {
		t.Errorf("unexpected first line: %+v", first)
	}
	if len(rec.events) != 1 || rec.events[0].event != EventOrderCreated || rec.events[0].orderID != order.ID {
		t.Errorf("events = %+v", rec.events)
	}
}

func TestCreateOrderExplicitTaxAndDiscount(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)
	burger := seedMenuItem(t, db, "Zinger", 500)

	in := validInput(CartLine{MenuItemID: burger.ID, Quantity: 1})
	in.Discount = decPtr("1088")
	order, err := svc.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if !order.Total.Equal(dec("-518")) {
		t.Errorf("total = %s, want -518", order.Total)
	}

	fries := seedMenuItem(t, db, "Fries", 300)
	in = validInput(
		CartLine{MenuItemID: burger.ID, Quantity: 2},
		CartLine{MenuItemID: fries.ID, Quantity: 1},
	)
	in.Discount = decPtr("2000")
	order, err = svc.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if !order.Subtotal.Equal(dec("1300")) || !order.Tax.Equal(dec("182")) || !order.Total.Equal(dec("-518")) {
		t.Errorf("got subtotal %s tax %s total %s, want 1300 182 -518", order.Subtotal, order.Tax, order.Total)
	}

	in = validInput(CartLine{MenuItemID: burger.ID, Quantity: 1})
	in.TaxRatePercent = decPtr("0")
	order, err = svc.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if !order.Tax.IsZero() || !order.Total.Equal(dec("500")) {
		t.Errorf("zero rate not honoured: tax %s total %s", order.Tax, order.Total)
	}
}

func TestCreateOrderUnknownMenuItemWritesNothing(t *testing.T) {
	db := newTestDB(t)
	rec := &recorder{}
	svc := newOrderService(t, db, rec)
	burger := seedMenuItem(t, db, "Zinger", 500)

	_, err := svc.Create(validInput(
		CartLine{MenuItemID: burger.ID, Quantity: 1},
		CartLine{MenuItemID: 999, Quantity: 1},
	))
	var ref *InvalidReferenceError
	if !errors.As(err, &ref) || ref.MenuItemID != 999 {
		t.Fatalf("err = %v, want InvalidReferenceError for 999", err)
	}
	if err.Error() != "menu item with ID 999 not found" {
		t.Errorf("message = %q", err.Error())
	}

	var orders, lines int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.OrderLine{}).Count(&lines)
	if orders != 0 || lines != 0 {
		t.Errorf("rows written: orders=%d lines=%d", orders, lines)
	}
	if len(rec.events) != 0 {
		t.Errorf("event published for failed order")
	}
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)
	burger := seedMenuItem(t, db, "Zinger", 500)
	line := CartLine{MenuItemID: burger.ID, Quantity: 1}

	tests := []struct {
		name  string
		mod   func(in *CreateOrderInput)
		field string
	}{
		{"empty cart", func(in *CreateOrderInput) { in.Cart.Lines = nil }, "items"},
		{"blank name", func(in *CreateOrderInput) { in.CustomerName = "  " }, "customerName"},
		{"blank phone", func(in *CreateOrderInput) { in.CustomerPhone = "" }, "customerPhone"},
		{"blank address", func(in *CreateOrderInput) { in.CustomerAddress = "" }, "customerAddress"},
		{"zero quantity", func(in *CreateOrderInput) { in.Cart.Lines = []CartLine{{MenuItemID: burger.ID}} }, "items"},
		{"missing menu item", func(in *CreateOrderInput) { in.Cart.Lines = []CartLine{{Quantity: 1}} }, "items"},
		{"negative discount", func(in *CreateOrderInput) { in.Discount = decPtr("-1") }, "discount"},
		{"negative tax", func(in *CreateOrderInput) { in.TaxRatePercent = decPtr("-5") }, "tax"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(line)
			tt.mod(&in)
			_, err := svc.Create(in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}

	var n int64
	db.Model(&entity.Order{}).Count(&n)
	if n != 0 {
		t.Errorf("orders written: %d", n)
	}
}

func TestOrderKeepsPriceSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)
	burger := seedMenuItem(t, db, "Zinger", 500)

	order, err := svc.Create(validInput(CartLine{MenuItemID: burger.ID, Quantity: 2}))
	if err != nil {
		t.Fatal(err)
	}

	if err := db.Model(&entity.MenuItem{}).Where("id = ?", burger.ID).
		Updates(map[string]any{"price": "650", "is_active": false}).Error; err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(order.ID)
	if err != nil {
		t.Fatal(err)
	}
	l := got.Lines[0]
	if !l.Price.Equal(dec("500")) || !got.Subtotal.Equal(dec("1000")) {
		t.Errorf("snapshot changed: line %s subtotal %s", l.Price, got.Subtotal)
	}
	if l.MenuItem == nil || l.MenuItem.IsActive {
		t.Errorf("inactive menu item should still be joined: %+v", l.MenuItem)
	}

	// an inactive item can still be ordered by id
	if _, err := svc.Create(validInput(CartLine{MenuItemID: burger.ID, Quantity: 1})); err != nil {
		t.Errorf("inactive item rejected: %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	db := newTestDB(t)
	rec := &recorder{}
	svc := newOrderService(t, db, rec)
	burger := seedMenuItem(t, db, "Zinger", 500)
	order, err := svc.Create(validInput(CartLine{MenuItemID: burger.ID, Quantity: 1}))
	if err != nil {
		t.Fatal(err)
	}

	// any label may follow any other
	for _, st := range []string{"completed", "pending", "ready", "preparing"} {
		got, err := svc.SetStatus(order.ID, st)
		if err != nil {
			t.Fatalf("SetStatus(%s): %v", st, err)
		}
		if string(got.Status) != st {
			t.Errorf("status = %q, want %q", got.Status, st)
		}
		if len(got.Lines) != 1 {
			t.Errorf("lines not joined after status change")
		}
	}

	if _, err := svc.SetStatus(order.ID, "cancelled"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.SetStatus(order.ID, "Ready"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("labels are case sensitive, got %v", err)
	}
	cur, _ := svc.Get(order.ID)
	if cur.Status != entity.OrderPreparing {
		t.Errorf("rejected status changed the order: %q", cur.Status)
	}

	if _, err := svc.SetStatus(9999, "ready"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	// label is checked before lookup
	if _, err := svc.SetStatus(9999, "bogus"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}

	changed := 0
	for _, ev := range rec.events {
		if ev.event == EventOrderStatusChanged {
			changed++
		}
	}
	if changed != 4 {
		t.Errorf("status events = %d, want 4", changed)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)
	burger := seedMenuItem(t, db, "Zinger", 500)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var ids []uint
	for i := 0; i < 3; i++ {
		svc.Now = fixedClock(base.Add(time.Duration(i) * time.Minute))
		o, err := svc.Create(validInput(CartLine{MenuItemID: burger.ID, Quantity: 1}))
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, o.ID)
	}

	list, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].ID != ids[2] || list[2].ID != ids[0] {
		t.Errorf("unexpected order: %v", []uint{list[0].ID, list[1].ID, list[2].ID})
	}
	if _, err := svc.Get(12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
