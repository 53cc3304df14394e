package models

import "time"

const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

// Zone is an active delivery zone with its flat delivery fee.
type Zone struct {
	ID            int64  `json:"id"`
	City          string `json:"city"`
	AreaName      string `json:"areaName"`
	DeliveryPrice int64  `json:"deliveryPrice"`
}

// Branch is a restaurant location a pickup order can be collected from.
type Branch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// Contact is the guest contact block collected by the checkout wizard.
type Contact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// CheckoutDraft is the wizard's accumulated answers. It lives only for the
// duration of one checkout flow and is never persisted.
type CheckoutDraft struct {
	OrderType string  `json:"orderType"`
	Contact   Contact `json:"contact"`
	// delivery
	City    string `json:"city"`
	ZoneID  int64  `json:"zoneId"`
	Address string `json:"address"`
	// pickup
	BranchID int64 `json:"branchId"`
	// optional authenticated identity; empty means guest
	UserID string `json:"userId"`
}

// CreateOrderInput is the order header handed to the order sink.
type CreateOrderInput struct {
	OrderType     string
	Subtotal      int64
	DeliveryPrice int64
	TotalPrice    int64
	GuestName     string
	GuestPhone    string
	BranchID      int64  // pickup only, 0 otherwise
	Address       string // delivery only: "city – area\naddress text"
	UserID        string // empty for guest orders
}

// OrderItemInput is one cart line flattened for the order sink.
type OrderItemInput struct {
	MenuItemID int64
	Quantity   int
	UnitPrice  int64
	Selections []OptionSelection
	Notes      string
}

// Order is a stored order header, as read back for the account pages.
type Order struct {
	ID            int64     `json:"id"`
	OrderType     string    `json:"orderType"`
	Subtotal      int64     `json:"subtotal"`
	DeliveryPrice int64     `json:"deliveryPrice"`
	TotalPrice    int64     `json:"totalPrice"`
	GuestName     string    `json:"guestName"`
	GuestPhone    string    `json:"guestPhone"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderItem is a stored order line, as read back for the order details page.
type OrderItem struct {
	ID         int64             `json:"id"`
	MenuItemID int64             `json:"menuItemId"`
	Quantity   int               `json:"quantity"`
	UnitPrice  int64             `json:"unitPrice"`
	Selections []OptionSelection `json:"selections"`
	Notes      string            `json:"notes"`
}
