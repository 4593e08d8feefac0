package services

import (
	"testing"
	"time"

	"pos-backend/repository"
)

func TestSalesStats(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderService(t, db, nil)
	burger := seedMenuItem(t, db, "Zinger", 500)
	fries := seedMenuItem(t, db, "Fries", 300)

	pkt := time.FixedZone("PKT", 5*3600)
	place := func(at time.Time, lines ...CartLine) {
		t.Helper()
		orders.Now = fixedClock(at)
		if _, err := orders.Create(validInput(lines...)); err != nil {
			t.Fatal(err)
		}
	}

	// 570 each (500 + 14%) and 342 (300 + 14%)
	place(time.Date(2024, 5, 1, 23, 59, 0, 0, pkt), CartLine{MenuItemID: burger.ID, Quantity: 1}) // yesterday
	place(time.Date(2024, 5, 2, 0, 0, 0, 0, pkt), CartLine{MenuItemID: burger.ID, Quantity: 1})   // midnight counts
	place(time.Date(2024, 5, 2, 18, 30, 0, 0, pkt), CartLine{MenuItemID: fries.ID, Quantity: 1})
	place(time.Date(2024, 5, 3, 0, 0, 0, 0, pkt), CartLine{MenuItemID: burger.ID, Quantity: 1}) // next midnight excluded

	sales := NewSalesService(repository.NewOrderRepository(db))
	sales.Now = fixedClock(time.Date(2024, 5, 2, 10, 0, 0, 0, pkt))

	st, err := sales.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.TodayOrders != 2 {
		t.Errorf("todayOrders = %d, want 2", st.TodayOrders)
	}
	if !st.TodayRevenue.Equal(dec("912")) {
		t.Errorf("todayRevenue = %s, want 912", st.TodayRevenue)
	}
	if st.TotalOrders != 4 {
		t.Errorf("totalOrders = %d, want 4", st.TotalOrders)
	}
	if !st.TotalRevenue.Equal(dec("2052")) {
		t.Errorf("totalRevenue = %s, want 2052", st.TotalRevenue)
	}
}

func TestSalesStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	st, err := NewSalesService(repository.NewOrderRepository(db)).Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.TodayOrders != 0 || st.TotalOrders != 0 || !st.TodayRevenue.IsZero() || !st.TotalRevenue.IsZero() {
		t.Errorf("expected zeros, got %+v", st)
	}
}
