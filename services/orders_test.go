package services

import (
	"context"
	"testing"

	"storefront/db"
	"storefront/models"
)

// Requires a test database; seeds an order for one user and verifies
// another user cannot read it back.
func TestGetOrderScopedToOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if db.Pool == nil {
		t.Skip("no database configured")
	}

	ctx := context.Background()
	input := models.CreateOrderInput{
		OrderType:  models.OrderTypePickup,
		BranchID:   1,
		Subtotal:   25,
		TotalPrice: 25,
		GuestName:  "Test Guest",
		GuestPhone: "0590000000",
		UserID:     "owner-user",
	}
	items := []models.OrderItemInput{
		{MenuItemID: 1, Quantity: 1, UnitPrice: 25},
	}

	orderID, err := CreateOrder(ctx, input, items)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	o, _, err := GetOrder(ctx, orderID, "owner-user")
	if err != nil {
		t.Fatalf("GetOrder(owner): %v", err)
	}
	if o == nil {
		t.Fatal("GetOrder(owner) = nil, want order")
	}

	o, _, err = GetOrder(ctx, orderID, "other-user")
	if err != nil {
		t.Fatalf("GetOrder(other): %v", err)
	}
	if o != nil {
		t.Fatalf("GetOrder(other) = order %d, want nil", o.ID)
	}
}
