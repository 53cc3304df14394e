// Package storage is the cart's local durable storage boundary: the full
// line-item sequence is persisted under a fixed key and rehydrated on
// startup. A missing or unreadable value always yields an empty cart.
package storage

import "storefront/models"

type CartStorage interface {
	// Load returns the stored line items for the key, or an empty slice when
	// nothing (or garbage) is stored.
	Load(key string) []models.LineItem
	Save(key string, items []models.LineItem) error
	Clear(key string) error
}
