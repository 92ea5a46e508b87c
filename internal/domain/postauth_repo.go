package domain

import "time"

type PostAuthRepository interface {
	Create(order *PostAuthOrder) error
	GetByOrderID(orderID string) (*PostAuthOrder, error)

	// FindUnderMonitoring is always merchant-scoped; post-auth rows are
	// never visible across merchants.
	FindUnderMonitoring(merchantID string) ([]*PostAuthOrder, error)

	MarkChecked(orderID string, checkedAt time.Time) error
	MarkCleared(orderID string, clearedAt time.Time) error
}
