// services/order_transitions.go
package services

import (
	"fmt"

	"pos-backend/entity"
)

// SetStatus overwrites the order's status. Any label may follow any other;
// the label is checked before the order is looked up.
func (s *OrderService) SetStatus(orderID uint, status string) (*entity.Order, error) {
	st, ok := entity.ParseOrderStatus(status)
	if !ok {
		s.Log.Warn("status rejected", "orderId", orderID, "status", status)
		return nil, fmt.Errorf("%w %q", ErrInvalidStatus, status)
	}

	affected, err := s.Repo.UpdateStatus(orderID, st)
	if err != nil {
		s.Log.Error("update status failed", "orderId", orderID, "error", err)
		return nil, err
	}
	if affected == 0 {
		return nil, notFound("order")
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, storeErr("order", err)
	}
	s.Log.Info("order status changed", "orderId", o.ID, "status", o.Status)
	s.Events.Publish(EventOrderStatusChanged, o)
	return o, nil
}
