package domain

import "fmt"

// DataConsistencyError reports an order whose restaurant_id has no matching
// restaurant record. It is raised by the revenue ranking, where a row with
// no name would silently mislead the consumer; plain filtering tolerates
// orphaned orders (they simply never join).
type DataConsistencyError struct {
	RestaurantID int64
}

func (e *DataConsistencyError) Error() string {
	return fmt.Sprintf("orders reference unknown restaurant id %d", e.RestaurantID)
}
