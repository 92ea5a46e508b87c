package repository

import (
	"testing"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

func TestMarkClearedHappensOnce(t *testing.T) {
	repo := NewDefaultPostAuthRepository(setupTestDB(t))

	created := time.Now().UTC().Add(-121 * 24 * time.Hour)
	if err := repo.Create(&domain.PostAuthOrder{
		OrderID:       "order-1",
		MerchantID:    "merchant-1",
		Amount:        200,
		Status:        domain.StatusUnderMonitoring,
		CreatedAt:     created,
		LastCheckedAt: created,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	firstClear := time.Now().UTC()
	if err := repo.MarkCleared("order-1", firstClear); err != nil {
		t.Fatalf("mark cleared: %v", err)
	}

	order, err := repo.GetByOrderID("order-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if order.Status != domain.StatusCleared {
		t.Fatalf("expected CLEARED, got %s", order.Status)
	}
	if order.ClearedAt == nil {
		t.Fatalf("expected cleared timestamp set")
	}

	// second clear is a guarded no-op: the original timestamp stands
	if err := repo.MarkCleared("order-1", firstClear.Add(time.Hour)); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	again, err := repo.GetByOrderID("order-1")
	if err != nil {
		t.Fatalf("get after second clear: %v", err)
	}
	if !again.ClearedAt.Equal(*order.ClearedAt) {
		t.Fatalf("expected cleared timestamp unchanged, got %v", again.ClearedAt)
	}
}

func TestFindUnderMonitoringScopesByMerchant(t *testing.T) {
	repo := NewDefaultPostAuthRepository(setupTestDB(t))
	now := time.Now().UTC()

	seed := []*domain.PostAuthOrder{
		{OrderID: "o1", MerchantID: "m1", Status: domain.StatusUnderMonitoring, CreatedAt: now, LastCheckedAt: now},
		{OrderID: "o2", MerchantID: "m1", Status: domain.StatusCleared, CreatedAt: now, LastCheckedAt: now},
		{OrderID: "o3", MerchantID: "m2", Status: domain.StatusUnderMonitoring, CreatedAt: now, LastCheckedAt: now},
	}
	for _, order := range seed {
		if err := repo.Create(order); err != nil {
			t.Fatalf("create %s: %v", order.OrderID, err)
		}
	}

	orders, err := repo.FindUnderMonitoring("m1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderID != "o1" {
		t.Fatalf("expected only o1, got %+v", orders)
	}
}

func TestMarkCheckedUpdatesHeartbeat(t *testing.T) {
	repo := NewDefaultPostAuthRepository(setupTestDB(t))
	created := time.Now().UTC().Add(-10 * 24 * time.Hour)

	if err := repo.Create(&domain.PostAuthOrder{
		OrderID:       "order-1",
		MerchantID:    "merchant-1",
		Status:        domain.StatusUnderMonitoring,
		CreatedAt:     created,
		LastCheckedAt: created,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	checked := time.Now().UTC()
	if err := repo.MarkChecked("order-1", checked); err != nil {
		t.Fatalf("mark checked: %v", err)
	}

	order, err := repo.GetByOrderID("order-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if order.LastCheckedAt.Before(checked.Add(-time.Second)) {
		t.Fatalf("expected heartbeat updated, got %v", order.LastCheckedAt)
	}
	if order.Status != domain.StatusUnderMonitoring {
		t.Fatalf("heartbeat must not change status, got %s", order.Status)
	}
}
