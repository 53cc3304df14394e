package services

import (
	"fmt"

	"storefront/models"
)

// NewOrderMessage is the admin notification text for a freshly created order.
func NewOrderMessage(orderID int64, input models.CreateOrderInput, items []models.OrderItemInput) string {
	text := fmt.Sprintf("🆕 Order #%d\n\n", orderID)
	for _, it := range items {
		text += fmt.Sprintf("• item %d × %d — %d\n", it.MenuItemID, it.Quantity, it.UnitPrice*int64(it.Quantity))
		if it.Notes != "" {
			text += fmt.Sprintf("  note: %s\n", it.Notes)
		}
	}
	text += fmt.Sprintf("\nSubtotal: %d\n", input.Subtotal)
	if input.OrderType == models.OrderTypeDelivery {
		text += fmt.Sprintf("Delivery: %d\nAddress: %s\n", input.DeliveryPrice, input.Address)
	} else {
		text += fmt.Sprintf("Pickup, branch #%d\n", input.BranchID)
	}
	text += fmt.Sprintf("Total: %d\n\n%s — %s", input.TotalPrice, input.GuestName, input.GuestPhone)
	return text
}
