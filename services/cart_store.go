package services

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"storefront/models"
	"storefront/storage"
)

// CartStore owns one cart: an ordered sequence of line items, most recent
// first. Every mutation goes through its methods, which persist the cart and
// notify subscribers (drawer, cart page, navbar badge) afterwards. Reads
// hand out copies so callers can never mutate store state directly.
type CartStore struct {
	mu      sync.Mutex
	key     string
	items   []models.LineItem
	storage storage.CartStorage
	subs    []func()
}

// NewCartStore rehydrates the cart stored under key. Absent or malformed
// stored content yields an empty cart.
func NewCartStore(key string, st storage.CartStorage) *CartStore {
	s := &CartStore{key: key, storage: st}
	if st != nil {
		s.items = sanitizeItems(st.Load(key))
	}
	return s
}

// Subscribe registers a callback invoked after every cart mutation.
// Callbacks run outside the store's lock, so they may read back through the
// store.
func (s *CartStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Add runs the merge resolver against the current cart. An equivalent
// existing line absorbs the proposed quantity (keeping the newer unit price
// if the frozen prices ever disagree); otherwise a new priced line is
// prepended.
func (s *CartStore) Add(proposed models.ProposedItem) models.LineItem {
	s.mu.Lock()
	item := s.addLocked(proposed)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return item
}

func (s *CartStore) addLocked(proposed models.ProposedItem) models.LineItem {
	qty := proposed.Quantity
	if qty < 1 {
		qty = 1
	}

	var optionsPrice int64
	for _, sel := range proposed.Selections {
		optionsPrice += sel.PriceModifier
	}
	unitPrice := proposed.BasePrice + optionsPrice

	if i := ResolveMerge(s.items, proposed); i != -1 {
		it := s.items[i]
		if unitPrice != it.UnitPrice {
			// Frozen price disagrees with the incoming one (product price
			// changed mid-session). Trust the newer price for the merged line.
			it.BasePrice = proposed.BasePrice
			it.OptionsPrice = optionsPrice
			it.UnitPrice = unitPrice
		}
		it.Quantity += qty
		it.TotalPrice = TotalPrice(it.UnitPrice, it.Quantity)
		s.items[i] = it
		return it
	}

	item := models.LineItem{
		ID:           uuid.NewString(),
		ProductID:    proposed.ProductID,
		Name:         proposed.Name,
		Image:        proposed.Image,
		Selections:   NormalizeSelections(proposed.Selections),
		Notes:        proposed.Notes,
		Quantity:     qty,
		BasePrice:    proposed.BasePrice,
		OptionsPrice: optionsPrice,
		UnitPrice:    unitPrice,
		TotalPrice:   TotalPrice(unitPrice, qty),
	}
	s.items = append([]models.LineItem{item}, s.items...)
	return item
}

// UpdateQuantity sets a line's quantity, clamped to a minimum of 1, and
// recomputes its total from the frozen unit price. Unknown ids are a no-op.
func (s *CartStore) UpdateQuantity(lineItemID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	changed := false
	for i, it := range s.items {
		if it.ID == lineItemID {
			s.items[i].Quantity = quantity
			s.items[i].TotalPrice = TotalPrice(it.UnitPrice, quantity)
			changed = true
			break
		}
	}
	if changed {
		s.persistLocked()
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Remove drops a line item; no-op when the id is absent.
func (s *CartStore) Remove(lineItemID string) {
	s.mu.Lock()
	changed := false
	for i, it := range s.items {
		if it.ID == lineItemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			changed = true
			break
		}
	}
	if changed {
		s.persistLocked()
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	s.items = nil
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Items returns a snapshot copy of the cart, most recent line first.
func (s *CartStore) Items() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Subtotal sums the total price of every line.
func (s *CartStore) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, it := range s.items {
		sum += it.TotalPrice
	}
	return sum
}

// Count is the number of units in the cart (the navbar badge value).
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// persistLocked saves the cart; caller holds the lock. Persistence failures
// are logged, never surfaced into the shopping flow.
func (s *CartStore) persistLocked() {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(s.key, s.items); err != nil {
		log.Printf("cart save error: %v", err)
	}
}

func (s *CartStore) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// sanitizeItems repairs a rehydrated cart: quantities clamped to >= 1 and
// totals recomputed from the frozen unit price.
func sanitizeItems(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, 0, len(items))
	for _, it := range items {
		if it.ID == "" {
			continue
		}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		it.TotalPrice = TotalPrice(it.UnitPrice, it.Quantity)
		out = append(out, it)
	}
	return out
}
