package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileSource reads the two collections from flat JSON array files, the
// format the upstream exporter produces.
type FileSource struct {
	RestaurantsPath string
	OrdersPath      string
}

func NewFileSource(restaurantsPath, ordersPath string) FileSource {
	return FileSource{RestaurantsPath: restaurantsPath, OrdersPath: ordersPath}
}

func (f FileSource) Load(_ context.Context) (*Snapshot, error) {
	var snap Snapshot
	if err := readJSON(f.RestaurantsPath, &snap.Restaurants); err != nil {
		return nil, err
	}
	if err := readJSON(f.OrdersPath, &snap.Orders); err != nil {
		return nil, err
	}
	return &snap, nil
}

func readJSON(path string, dst any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
