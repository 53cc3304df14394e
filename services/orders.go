package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"storefront/db"
	"storefront/models"
)

// ListOrdersForUser returns an authenticated customer's orders, newest first.
func ListOrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, order_type, subtotal, delivery_price, total_price,
		       guest_customer_name, guest_phone, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderType, &o.Subtotal, &o.DeliveryPrice, &o.TotalPrice,
			&o.GuestName, &o.GuestPhone, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetOrder returns one of the user's orders with its items, nil when the
// order does not exist or belongs to someone else. Account reads are always
// scoped to the authenticated owner; guest orders have no owner and are not
// readable back.
func GetOrder(ctx context.Context, orderID int64, userID string) (*models.Order, []models.OrderItem, error) {
	var o models.Order
	err := db.Pool.QueryRow(ctx, `
		SELECT id, order_type, subtotal, delivery_price, total_price,
		       guest_customer_name, guest_phone, status, created_at
		FROM orders
		WHERE id = $1 AND user_id = $2`,
		orderID, userID,
	).Scan(&o.ID, &o.OrderType, &o.Subtotal, &o.DeliveryPrice, &o.TotalPrice,
		&o.GuestName, &o.GuestPhone, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT id, menu_item_id, quantity, unit_price, COALESCE(options, '[]'::jsonb), COALESCE(notes, '')
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		var optionsJSON []byte
		if err := rows.Scan(&it.ID, &it.MenuItemID, &it.Quantity, &it.UnitPrice, &optionsJSON, &it.Notes); err != nil {
			return nil, nil, err
		}
		if err := json.Unmarshal(optionsJSON, &it.Selections); err != nil {
			return nil, nil, fmt.Errorf("unmarshal selections for order %d item %d: %w", orderID, it.ID, err)
		}
		items = append(items, it)
	}
	return &o, items, rows.Err()
}
