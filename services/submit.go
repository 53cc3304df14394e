package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"storefront/db"
	"storefront/models"
)

const OrderStatusPending = "pending"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingFulfillment = errors.New("missing fulfillment details for order type")
)

// BuildOrder flattens the checkout draft and a cart snapshot into the order
// submission payload. The wizard's gating should make the error paths
// unreachable; they are kept as a defense-in-depth check. BuildOrder mutates
// neither the cart nor the draft.
func BuildOrder(draft models.CheckoutDraft, items []models.LineItem, zone *models.Zone) (models.CreateOrderInput, []models.OrderItemInput, error) {
	if len(items) == 0 {
		return models.CreateOrderInput{}, nil, ErrEmptyCart
	}

	var subtotal int64
	for _, it := range items {
		subtotal += it.TotalPrice
	}

	header := models.CreateOrderInput{
		OrderType:  draft.OrderType,
		Subtotal:   subtotal,
		GuestName:  strings.TrimSpace(draft.Contact.FirstName + " " + draft.Contact.LastName),
		GuestPhone: draft.Contact.Phone,
		UserID:     draft.UserID,
	}

	switch draft.OrderType {
	case models.OrderTypeDelivery:
		if zone == nil || draft.Address == "" {
			return models.CreateOrderInput{}, nil, ErrMissingFulfillment
		}
		header.DeliveryPrice = zone.DeliveryPrice
		header.Address = fmt.Sprintf("%s – %s\n%s", zone.City, zone.AreaName, draft.Address)
	case models.OrderTypePickup:
		if draft.BranchID == 0 {
			return models.CreateOrderInput{}, nil, ErrMissingFulfillment
		}
		header.BranchID = draft.BranchID
	default:
		return models.CreateOrderInput{}, nil, ErrMissingFulfillment
	}
	header.TotalPrice = subtotal + header.DeliveryPrice

	orderItems := make([]models.OrderItemInput, len(items))
	for i, it := range items {
		orderItems[i] = models.OrderItemInput{
			MenuItemID: it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Selections: it.Selections,
			Notes:      it.Notes,
		}
	}
	return header, orderItems, nil
}

// CreateOrder writes the order header and its items in one transaction and
// returns the created order id. A failure leaves no partial order behind,
// and the caller keeps the cart and draft intact for a manual retry.
func CreateOrder(ctx context.Context, input models.CreateOrderInput, items []models.OrderItemInput) (int64, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var branchID *int64
	if input.BranchID != 0 {
		branchID = &input.BranchID
	}
	var userID *string
	if input.UserID != "" {
		userID = &input.UserID
	}
	var address *string
	if input.Address != "" {
		address = &input.Address
	}

	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (
			order_type, subtotal, delivery_price, total_price,
			guest_customer_name, guest_phone, branch_id, address, user_id, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		input.OrderType, input.Subtotal, input.DeliveryPrice, input.TotalPrice,
		input.GuestName, input.GuestPhone, branchID, address, userID, OrderStatusPending,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	for _, it := range items {
		selectionsJSON, err := json.Marshal(it.Selections)
		if err != nil {
			return 0, fmt.Errorf("marshal selections: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price, options, notes)
			VALUES ($1, $2, $3, $4, $5::jsonb, $6)`,
			orderID, it.MenuItemID, it.Quantity, it.UnitPrice, selectionsJSON, it.Notes,
		)
		if err != nil {
			return 0, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit order tx: %w", err)
	}
	return orderID, nil
}
