package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

func TestCreateOrderRejectsDuplicatePlatformOrder(t *testing.T) {
	repo := NewDefaultOrderRepository(setupTestDB(t))
	insertOrder(t, repo, "order-1", "merchant-1", "SH-1001")

	duplicate := &domain.IncomingOrder{
		ID:              "order-2",
		MerchantID:      "merchant-1",
		Platform:        "shopify",
		MerchantOrderID: "SH-1001",
		Amount:          10,
		Status:          domain.StatusPending,
	}
	if err := repo.CreateOrder(duplicate); !errors.Is(err, domain.ErrDuplicateOrder) {
		t.Fatalf("expected ErrDuplicateOrder, got %v", err)
	}

	// same platform order id under another merchant is fine
	other := &domain.IncomingOrder{
		ID:              "order-3",
		MerchantID:      "merchant-2",
		Platform:        "shopify",
		MerchantOrderID: "SH-1001",
		Amount:          10,
		Status:          domain.StatusPending,
	}
	if err := repo.CreateOrder(other); err != nil {
		t.Fatalf("expected cross-merchant insert to pass: %v", err)
	}
}

func TestGetOrderByPlatformOrderID(t *testing.T) {
	repo := NewDefaultOrderRepository(setupTestDB(t))
	created := insertOrder(t, repo, "order-1", "merchant-1", "SH-1001")

	found, err := repo.GetOrderByPlatformOrderID("merchant-1", "shopify", "SH-1001")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected order %s, got %s", created.ID, found.ID)
	}

	if _, err := repo.GetOrderByPlatformOrderID("merchant-2", "shopify", "SH-1001"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestClaimPendingOrdersFlipsToProcessing(t *testing.T) {
	repo := NewDefaultOrderRepository(setupTestDB(t))
	insertOrder(t, repo, "order-1", "merchant-1", "SH-1001")
	insertOrder(t, repo, "order-2", "merchant-1", "SH-1002")
	insertOrder(t, repo, "order-3", "merchant-1", "SH-1003")

	claimed, err := repo.ClaimPendingOrders(2)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if len(claimed) != 2 {
		t.Fatalf("expected 2 claimed orders, got %d", len(claimed))
	}
	for _, order := range claimed {
		if order.Status != domain.StatusProcessing {
			t.Fatalf("expected PROCESSING, got %s", order.Status)
		}
	}

	// the claimed rows are gone from the pending pool
	remaining, err := repo.ClaimPendingOrders(10)
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining pending order, got %d", len(remaining))
	}
}

func TestMarkScannedRequiresProcessing(t *testing.T) {
	repo := NewDefaultOrderRepository(setupTestDB(t))
	insertOrder(t, repo, "order-1", "merchant-1", "SH-1001")

	assessment := &domain.RiskAssessment{
		ID:          "assessment-1",
		OrderID:     "order-1",
		MerchantID:  "merchant-1",
		Layer1Score: 12,
		FusedScore:  12,
		RiskLevel:   domain.RiskLow,
		Decision:    domain.DecisionApprove,
		AssessedAt:  time.Now().UTC(),
	}

	// still PENDING: the guarded update must refuse
	if err := repo.MarkScanned("order-1", assessment); err == nil {
		t.Fatalf("expected MarkScanned to fail on a PENDING order")
	}

	if _, err := repo.ClaimPendingOrders(1); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := repo.MarkScanned("order-1", assessment); err != nil {
		t.Fatalf("mark scanned: %v", err)
	}

	order, err := repo.GetOrderByID("order-1")
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if order.Status != domain.StatusScanned {
		t.Fatalf("expected SCANNED, got %s", order.Status)
	}
	if order.Assessment == nil || order.Assessment.ID != "assessment-1" {
		t.Fatalf("expected assessment preloaded, got %+v", order.Assessment)
	}
}

func TestReopenFailedGuardsOnStatus(t *testing.T) {
	repo := NewDefaultOrderRepository(setupTestDB(t))
	insertOrder(t, repo, "order-1", "merchant-1", "SH-1001")

	if err := repo.ReopenFailed("order-1"); !errors.Is(err, domain.ErrNotFailedOrder) {
		t.Fatalf("expected ErrNotFailedOrder on PENDING order, got %v", err)
	}

	if err := repo.MarkFailed("order-1", "provider exploded"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := repo.ReopenFailed("order-1"); err != nil {
		t.Fatalf("reopen: %v", err)
	}

	order, err := repo.GetOrderByID("order-1")
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("expected PENDING after reopen, got %s", order.Status)
	}
	if order.FailureReason != "" {
		t.Fatalf("expected failure reason cleared, got %q", order.FailureReason)
	}
}

func TestCountRecentByCustomerMatchesEitherIdentity(t *testing.T) {
	repo := NewDefaultOrderRepository(setupTestDB(t))

	now := time.Now().UTC()
	orders := []*domain.IncomingOrder{
		{ID: "o1", MerchantID: "m1", Platform: "shopify", MerchantOrderID: "A1",
			CustomerEmail: "a@example.com", Amount: 5, Status: domain.StatusPending, CreatedAt: now},
		{ID: "o2", MerchantID: "m1", Platform: "shopify", MerchantOrderID: "A2",
			CustomerPhone: "15550102233", Amount: 5, Status: domain.StatusPending, CreatedAt: now},
		// stale order outside the window
		{ID: "o3", MerchantID: "m1", Platform: "shopify", MerchantOrderID: "A3",
			CustomerEmail: "a@example.com", Amount: 5, Status: domain.StatusPending,
			CreatedAt: now.Add(-48 * time.Hour)},
		// different merchant
		{ID: "o4", MerchantID: "m2", Platform: "shopify", MerchantOrderID: "A4",
			CustomerEmail: "a@example.com", Amount: 5, Status: domain.StatusPending, CreatedAt: now},
	}
	for _, order := range orders {
		if err := repo.CreateOrder(order); err != nil {
			t.Fatalf("create %s: %v", order.ID, err)
		}
	}

	count, err := repo.CountRecentByCustomer("m1", "a@example.com", "15550102233", 24)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 matches, got %d", count)
	}
}

func TestGetOrdersFiltersAndPaginates(t *testing.T) {
	repo := NewDefaultOrderRepository(setupTestDB(t))
	insertOrder(t, repo, "order-1", "merchant-1", "SH-1001")
	insertOrder(t, repo, "order-2", "merchant-1", "SH-1002")
	if err := repo.MarkFailed("order-2", "boom"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	orders, total, err := repo.GetOrders("merchant-1", domain.OrderFilters{Status: domain.StatusFailed}, 1, 10)
	if err != nil {
		t.Fatalf("get orders: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("expected exactly one FAILED order, got total=%d len=%d", total, len(orders))
	}
	if orders[0].ID != "order-2" {
		t.Fatalf("expected order-2, got %s", orders[0].ID)
	}
}
