package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"storefront/db"
	"storefront/models"
)

const catalogCacheTTL = time.Minute

type cachedMenuItem struct {
	item      *models.MenuItem
	expiresAt time.Time
}

var (
	catalogMu    sync.Mutex
	catalogCache = map[int64]cachedMenuItem{}
	catalogSfg   singleflight.Group
)

// ListMenu returns the full menu ordered by category, with images.
func ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	return queryMenu(ctx, `
		SELECT id, category, name, COALESCE(description, ''), price, COALESCE(options, '[]'::jsonb)
		FROM menu_items
		WHERE is_active
		ORDER BY category, id`)
}

// ListMenuByCategory returns active menu items in one category.
func ListMenuByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	return queryMenu(ctx, `
		SELECT id, category, name, COALESCE(description, ''), price, COALESCE(options, '[]'::jsonb)
		FROM menu_items
		WHERE is_active AND category = $1
		ORDER BY id`, category)
}

func queryMenu(ctx context.Context, sql string, args ...any) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		var optionsJSON []byte
		if err := rows.Scan(&m.ID, &m.Category, &m.Name, &m.Description, &m.Price, &optionsJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(optionsJSON, &m.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options for item %d: %w", m.ID, err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// GetMenuItem returns one menu item with its option groups and images.
// Results are cached briefly; concurrent misses for the same id collapse
// into a single query.
func GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	catalogMu.Lock()
	if c, ok := catalogCache[id]; ok && time.Now().Before(c.expiresAt) {
		catalogMu.Unlock()
		return c.item, nil
	}
	catalogMu.Unlock()

	v, err, _ := catalogSfg.Do(fmt.Sprintf("menu_item:%d", id), func() (interface{}, error) {
		// The fetch serves every collapsed caller, so it must not die with
		// whichever request happened to trigger it.
		item, err := fetchMenuItem(context.WithoutCancel(ctx), id)
		if err != nil {
			return nil, err
		}
		catalogMu.Lock()
		catalogCache[id] = cachedMenuItem{item: item, expiresAt: time.Now().Add(catalogCacheTTL)}
		catalogMu.Unlock()
		return item, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.MenuItem), nil
}

func fetchMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	var m models.MenuItem
	var optionsJSON []byte
	err := db.Pool.QueryRow(ctx, `
		SELECT id, category, name, COALESCE(description, ''), price, COALESCE(options, '[]'::jsonb)
		FROM menu_items
		WHERE id = $1 AND is_active`,
		id,
	).Scan(&m.ID, &m.Category, &m.Name, &m.Description, &m.Price, &optionsJSON)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(optionsJSON, &m.Options); err != nil {
		return nil, fmt.Errorf("unmarshal options for item %d: %w", m.ID, err)
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT image_url FROM menu_item_images WHERE menu_item_id = $1 ORDER BY id`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		m.Images = append(m.Images, url)
	}
	return &m, rows.Err()
}

// AddMenuItem inserts a menu item (admin seeding path).
func AddMenuItem(ctx context.Context, category, name string, price int64, options []models.OptionGroup) (int64, error) {
	if category != models.CategoryFood && category != models.CategoryDrink && category != models.CategoryDessert {
		return 0, fmt.Errorf("invalid category: %s", category)
	}
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	if price < 0 {
		return 0, fmt.Errorf("price must be >= 0")
	}
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return 0, fmt.Errorf("marshal options: %w", err)
	}

	var id int64
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO menu_items (category, name, price, options, is_active)
		VALUES ($1, $2, $3, $4::jsonb, true)
		RETURNING id`,
		category, name, price, optionsJSON,
	).Scan(&id)
	return id, err
}
