package domain

import "errors"

var (
	ErrDuplicateOrder      = errors.New("order already enqueued for merchant+platform")
	ErrOrderNotFound       = errors.New("order not found")
	ErrMerchantNotFound    = errors.New("merchant monitoring config not found")
	ErrProviderUnavailable = errors.New("external validation provider unavailable")
	ErrNotFailedOrder      = errors.New("order is not in FAILED state")
)
