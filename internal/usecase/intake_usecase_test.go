package usecase

import (
	"testing"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/repository"
	orderdto "github.com/veyra-labs/veyra-risk-service/internal/usecase/dto/order"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func validEnqueueInput() *orderdto.EnqueueOrderInput {
	return &orderdto.EnqueueOrderInput{
		MerchantID:      "merchant-1",
		Platform:        "shopify",
		MerchantOrderID: "SH-1001",
		CustomerEmail:   "buyer@example.com",
		Amount:          49.90,
	}
}

func TestEnqueueCreatesPendingOrder(t *testing.T) {
	repo := repository.NewDefaultOrderRepository(setupTestDB(t))
	uc := NewDefaultIntakeUsecase(repo, nil)

	output, err := uc.Enqueue(validEnqueueInput())
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if output.Duplicate {
		t.Fatalf("expected fresh enqueue, got duplicate")
	}
	if output.Order.Status != domain.StatusPending {
		t.Fatalf("expected PENDING, got %s", output.Order.Status)
	}
	if output.Order.ID == "" {
		t.Fatalf("expected generated order id")
	}
}

func TestEnqueueIsIdempotentOnRetry(t *testing.T) {
	repo := repository.NewDefaultOrderRepository(setupTestDB(t))
	uc := NewDefaultIntakeUsecase(repo, nil)

	first, err := uc.Enqueue(validEnqueueInput())
	if err != nil {
		t.Fatalf("first enqueue: %v", err)
	}

	retry, err := uc.Enqueue(validEnqueueInput())
	if err != nil {
		t.Fatalf("retried enqueue: %v", err)
	}
	if !retry.Duplicate {
		t.Fatalf("expected duplicate flag on retry")
	}
	if retry.Order.ID != first.Order.ID {
		t.Fatalf("expected same order on retry, got %s vs %s", retry.Order.ID, first.Order.ID)
	}
}

func TestEnqueueValidation(t *testing.T) {
	repo := repository.NewDefaultOrderRepository(setupTestDB(t))
	uc := NewDefaultIntakeUsecase(repo, nil)

	cases := []struct {
		name   string
		mutate func(*orderdto.EnqueueOrderInput)
	}{
		{"missing merchant", func(in *orderdto.EnqueueOrderInput) { in.MerchantID = "" }},
		{"missing platform", func(in *orderdto.EnqueueOrderInput) { in.Platform = "" }},
		{"missing order id", func(in *orderdto.EnqueueOrderInput) { in.MerchantOrderID = "" }},
		{"zero amount", func(in *orderdto.EnqueueOrderInput) { in.Amount = 0 }},
		{"negative amount", func(in *orderdto.EnqueueOrderInput) { in.Amount = -5 }},
		{"malformed email", func(in *orderdto.EnqueueOrderInput) { in.CustomerEmail = "not-an-email" }},
	}

	for _, tc := range cases {
		input := validEnqueueInput()
		tc.mutate(input)
		_, err := uc.Enqueue(input)
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("%s: expected InvalidArgument, got %v", tc.name, err)
		}
	}
}

func TestReEnqueueFailedChecksOwnershipAndStatus(t *testing.T) {
	repo := repository.NewDefaultOrderRepository(setupTestDB(t))
	uc := NewDefaultIntakeUsecase(repo, nil)

	output, err := uc.Enqueue(validEnqueueInput())
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	orderID := output.Order.ID

	// wrong merchant must not learn the order exists
	if err := uc.ReEnqueueFailed("merchant-2", orderID); status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound for foreign merchant, got %v", err)
	}

	// still PENDING
	if err := uc.ReEnqueueFailed("merchant-1", orderID); status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition for non-FAILED order, got %v", err)
	}

	if err := repo.MarkFailed(orderID, "boom"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := uc.ReEnqueueFailed("merchant-1", orderID); err != nil {
		t.Fatalf("re-enqueue: %v", err)
	}

	order, err := uc.GetOrderByID("merchant-1", orderID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("expected PENDING after re-enqueue, got %s", order.Status)
	}
}

func TestGetOrderByIDScopesToMerchant(t *testing.T) {
	repo := repository.NewDefaultOrderRepository(setupTestDB(t))
	uc := NewDefaultIntakeUsecase(repo, nil)

	output, err := uc.Enqueue(validEnqueueInput())
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	if _, err := uc.GetOrderByID("merchant-2", output.Order.ID); err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound for foreign merchant, got %v", err)
	}
}
