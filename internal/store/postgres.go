package store

import (
	"context"
	"fmt"
	"time"

	"restaurant-dashboard/internal/common/db"
	"restaurant-dashboard/internal/domain"
)

// PGSource loads the snapshot from the mirror tables in Postgres. Both
// collections are read in one pass so the resulting snapshot is internally
// consistent; row order matches the exporter's insertion order.
type PGSource struct {
	conn *db.Conn
}

func NewPGSource(conn *db.Conn) *PGSource { return &PGSource{conn: conn} }

func (p *PGSource) Load(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot

	rows, err := p.conn.Query(ctx, `
SELECT id, name, location, cuisine
FROM restaurants
ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r domain.Restaurant
		if err := rows.Scan(&r.ID, &r.Name, &r.Location, &r.Cuisine); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		snap.Restaurants = append(snap.Restaurants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read restaurants: %w", err)
	}

	orows, err := p.conn.Query(ctx, `
SELECT id, restaurant_id, order_time, order_amount
FROM orders
ORDER BY order_time NULLS LAST, id NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer orows.Close()
	for orows.Next() {
		var (
			o  domain.Order
			ts *time.Time
		)
		if err := orows.Scan(&o.ID, &o.RestaurantID, &ts, &o.OrderAmount); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if ts != nil {
			o.OrderTime = &domain.LocalTime{Time: *ts}
		}
		snap.Orders = append(snap.Orders, o)
	}
	if err := orows.Err(); err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return &snap, nil
}
