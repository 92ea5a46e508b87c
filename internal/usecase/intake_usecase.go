package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/metrics"
	orderdto "github.com/veyra-labs/veyra-risk-service/internal/usecase/dto/order"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type IntakeUsecase interface {
	Enqueue(input *orderdto.EnqueueOrderInput) (*orderdto.OrderOutput, error)
	ReEnqueueFailed(merchantID, orderID string) error
	GetOrders(merchantID string, filters domain.OrderFilters, page, limit int) (*orderdto.GetOrdersOutput, error)
	GetOrderByID(merchantID, orderID string) (*domain.IncomingOrder, error)
}

type DefaultIntakeUsecase struct {
	OrderRepo domain.OrderRepository
	Metrics   *metrics.RiskMetrics
}

func NewDefaultIntakeUsecase(orderRepo domain.OrderRepository, riskMetrics *metrics.RiskMetrics) *DefaultIntakeUsecase {
	return &DefaultIntakeUsecase{
		OrderRepo: orderRepo,
		Metrics:   riskMetrics,
	}
}

// Enqueue validates the webhook payload and appends the order as PENDING.
// Retried webhooks resolve to the already-enqueued row instead of erroring,
// keyed on (merchantId, platform, orderId).
func (uc *DefaultIntakeUsecase) Enqueue(input *orderdto.EnqueueOrderInput) (*orderdto.OrderOutput, error) {
	if err := validateEnqueueInput(input); err != nil {
		return nil, err
	}

	existing, err := uc.OrderRepo.GetOrderByPlatformOrderID(input.MerchantID, input.Platform, input.MerchantOrderID)
	if err != nil && !errors.Is(err, domain.ErrOrderNotFound) {
		return nil, err
	}
	if existing != nil {
		return &orderdto.OrderOutput{Order: *existing, Duplicate: true}, nil
	}

	now := time.Now().UTC()
	order := domain.IncomingOrder{
		ID:              uuid.New().String(),
		MerchantID:      input.MerchantID,
		Platform:        input.Platform,
		MerchantOrderID: input.MerchantOrderID,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		ShippingAddress: input.ShippingAddress,
		Amount:          input.Amount,
		IPAddress:       input.IPAddress,
		Status:          domain.StatusPending,
		Signals:         input.Signals,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.OrderRepo.CreateOrder(&order); err != nil {
		// a concurrent webhook retry won the insert race; resolve to its row
		if errors.Is(err, domain.ErrDuplicateOrder) {
			if existing, lookupErr := uc.OrderRepo.GetOrderByPlatformOrderID(
				input.MerchantID, input.Platform, input.MerchantOrderID); lookupErr == nil {
				return &orderdto.OrderOutput{Order: *existing, Duplicate: true}, nil
			}
		}
		return nil, err
	}

	uc.Metrics.RecordEnqueued(order.MerchantID, order.Platform)

	return &orderdto.OrderOutput{Order: order}, nil
}

// ReEnqueueFailed moves a FAILED order back to PENDING. There is no silent
// auto-retry; repeated external calls cost money, so re-scanning is an
// explicit merchant action.
func (uc *DefaultIntakeUsecase) ReEnqueueFailed(merchantID, orderID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return status.Errorf(codes.NotFound, "order not found: %s", orderID)
		}
		return err
	}
	if order.MerchantID != merchantID {
		return status.Errorf(codes.NotFound, "order not found: %s", orderID)
	}

	if err := uc.OrderRepo.ReopenFailed(orderID); err != nil {
		if errors.Is(err, domain.ErrNotFailedOrder) {
			return status.Errorf(codes.FailedPrecondition, "order %s is not FAILED", orderID)
		}
		return err
	}
	return nil
}

func (uc *DefaultIntakeUsecase) GetOrders(merchantID string, filters domain.OrderFilters, page, limit int) (*orderdto.GetOrdersOutput, error) {
	orders, total, err := uc.OrderRepo.GetOrders(merchantID, filters, page, limit)
	if err != nil {
		return nil, err
	}
	return &orderdto.GetOrdersOutput{Orders: orders, Total: total}, nil
}

func (uc *DefaultIntakeUsecase) GetOrderByID(merchantID, orderID string) (*domain.IncomingOrder, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.MerchantID != merchantID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func validateEnqueueInput(input *orderdto.EnqueueOrderInput) error {
	if input.MerchantID == "" {
		return status.Error(codes.InvalidArgument, "merchant_id is required")
	}
	if input.Platform == "" {
		return status.Error(codes.InvalidArgument, "platform is required")
	}
	if input.MerchantOrderID == "" {
		return status.Error(codes.InvalidArgument, "order_id is required")
	}
	if input.Amount <= 0 {
		return status.Error(codes.InvalidArgument, "amount must be positive")
	}
	if input.CustomerEmail != "" && !strings.Contains(input.CustomerEmail, "@") {
		return status.Error(codes.InvalidArgument, "customer_email is malformed")
	}
	return nil
}
