package domain

type OrderFilters struct {
	Status          OrderStatus
	MerchantOrderID string
}

type OrderRepository interface {
	CreateOrder(order *IncomingOrder) error
	GetOrderByID(orderID string) (*IncomingOrder, error)
	GetOrderByPlatformOrderID(merchantID, platform, merchantOrderID string) (*IncomingOrder, error)

	// ClaimPendingOrders atomically moves up to limit PENDING orders to
	// PROCESSING and returns them. Two concurrent callers never receive
	// the same order.
	ClaimPendingOrders(limit int) ([]*IncomingOrder, error)

	MarkScanned(orderID string, assessment *RiskAssessment) error
	MarkFailed(orderID string, reason string) error
	ReopenFailed(orderID string) error

	CountRecentByCustomer(merchantID, customerEmail, customerPhone string, windowHours int) (int64, error)
	GetOrders(merchantID string, filters OrderFilters, page, limit int) ([]*IncomingOrder, int64, error)
}
