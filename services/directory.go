package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"storefront/db"
	"storefront/models"
)

// ListZones returns all active delivery zones.
func ListZones(ctx context.Context) ([]models.Zone, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, city, area_name, delivery_price
		FROM delivery_zones
		WHERE is_active
		ORDER BY city, area_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []models.Zone
	for rows.Next() {
		var z models.Zone
		if err := rows.Scan(&z.ID, &z.City, &z.AreaName, &z.DeliveryPrice); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

// Cities returns the distinct cities across the given zones, in zone order.
func Cities(zones []models.Zone) []string {
	seen := map[string]bool{}
	var cities []string
	for _, z := range zones {
		if !seen[z.City] {
			seen[z.City] = true
			cities = append(cities, z.City)
		}
	}
	return cities
}

// ZonesForCity filters zones to those in the chosen city.
func ZonesForCity(zones []models.Zone, city string) []models.Zone {
	var out []models.Zone
	for _, z := range zones {
		if z.City == city {
			out = append(out, z)
		}
	}
	return out
}

// GetZone returns an active zone by id, nil when it does not exist.
func GetZone(ctx context.Context, id int64) (*models.Zone, error) {
	var z models.Zone
	err := db.Pool.QueryRow(ctx, `
		SELECT id, city, area_name, delivery_price
		FROM delivery_zones
		WHERE id = $1 AND is_active`,
		id,
	).Scan(&z.ID, &z.City, &z.AreaName, &z.DeliveryPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &z, nil
}

// ListBranches returns all active pickup branches.
func ListBranches(ctx context.Context) ([]models.Branch, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, city
		FROM branches
		WHERE is_active
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []models.Branch
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.City); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

// GetBranch returns an active branch by id, nil when it does not exist.
func GetBranch(ctx context.Context, id int64) (*models.Branch, error) {
	var b models.Branch
	err := db.Pool.QueryRow(ctx, `
		SELECT id, name, city FROM branches WHERE id = $1 AND is_active`,
		id,
	).Scan(&b.ID, &b.Name, &b.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
