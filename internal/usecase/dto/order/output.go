package orderdto

import "github.com/veyra-labs/veyra-risk-service/internal/domain"

type OrderOutput struct {
	Order domain.IncomingOrder
	// Duplicate marks webhook retries resolved to the already-enqueued row.
	Duplicate bool
}

type GetOrdersOutput struct {
	Orders []*domain.IncomingOrder
	Total  int64
}
