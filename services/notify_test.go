package services

import (
	"strings"
	"testing"

	"storefront/models"
)

func TestNewOrderMessage(t *testing.T) {
	header := models.CreateOrderInput{
		OrderType:     models.OrderTypeDelivery,
		Subtotal:      60,
		DeliveryPrice: 10,
		TotalPrice:    70,
		GuestName:     "Lina H",
		GuestPhone:    "0590000000",
		Address:       "Ramallah – Al-Tireh\nMain st. 4",
	}
	items := []models.OrderItemInput{{MenuItemID: 1, Quantity: 2, UnitPrice: 30, Notes: "no onions"}}

	m := NewOrderMessage(123, header, items)
	for _, want := range []string{"#123", "70", "Lina H", "0590000000", "no onions", "Al-Tireh"} {
		if !strings.Contains(m, want) {
			t.Errorf("message should contain %q:\n%s", want, m)
		}
	}

	header.OrderType = models.OrderTypePickup
	header.DeliveryPrice = 0
	header.TotalPrice = 60
	header.BranchID = 2
	m = NewOrderMessage(124, header, items)
	if !strings.Contains(m, "Pickup, branch #2") {
		t.Errorf("pickup message should name the branch:\n%s", m)
	}
}
