package services

import (
	"time"

	"pos-backend/repository"

	"github.com/shopspring/decimal"
)

type SalesStats struct {
	TodayRevenue decimal.Decimal `json:"todayRevenue"`
	TodayOrders  int             `json:"todayOrders"`
	TotalOrders  int             `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// SalesService recomputes the dashboard figures on every call.
type SalesService struct {
	Repo *repository.OrderRepository
	Now  func() time.Time
}

func NewSalesService(repo *repository.OrderRepository) *SalesService {
	return &SalesService{Repo: repo, Now: time.Now}
}

// Stats counts "today" as [midnight, next midnight) in the clock's location.
func (s *SalesService) Stats() (*SalesStats, error) {
	rows, err := s.Repo.ListTotals()
	if err != nil {
		return nil, err
	}

	now := s.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	st := &SalesStats{
		TodayRevenue: decimal.Zero,
		TotalRevenue: decimal.Zero,
		TotalOrders:  len(rows),
	}
	for _, r := range rows {
		st.TotalRevenue = st.TotalRevenue.Add(r.Total)
		if !r.CreatedAt.Before(start) && r.CreatedAt.Before(end) {
			st.TodayRevenue = st.TodayRevenue.Add(r.Total)
			st.TodayOrders++
		}
	}
	return st, nil
}
