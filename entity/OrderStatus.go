package entity

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
)

// OrderStatuses lists every recognised label in workflow order.
var OrderStatuses = []OrderStatus{OrderPending, OrderPreparing, OrderReady, OrderCompleted}

// ParseOrderStatus accepts only the exact lowercase labels.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}
