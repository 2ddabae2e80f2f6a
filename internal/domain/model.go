package domain

import "strconv"

// Restaurant is one record of the restaurant collection. Records are
// immutable: they are created and destroyed only by a snapshot reload.
type Restaurant struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Cuisine  string `json:"cuisine"`
}

// UnknownRestaurant is the display placeholder for a restaurant id that has
// no record in the snapshot.
func UnknownRestaurant(id int64) Restaurant {
	return Restaurant{ID: id, Name: "Unknown Restaurant", Location: "N/A", Cuisine: "N/A"}
}

// Order is one record of the order collection. The source data carries no
// schema enforcement, so id, order_time and order_amount may be absent.
// Absence is kept as a nil pointer and substituted with a sentinel only at
// display time, so degraded records stay distinguishable from valid zeros.
type Order struct {
	ID           *int64     `json:"id,omitempty"`
	RestaurantID int64      `json:"restaurant_id"`
	OrderTime    *LocalTime `json:"order_time,omitempty"`
	OrderAmount  *float64   `json:"order_amount,omitempty"`
}

// Amount returns the order amount, 0 when the field is missing.
func (o Order) Amount() float64 {
	if o.OrderAmount == nil {
		return 0
	}
	return *o.OrderAmount
}

// Time reports the order timestamp and whether it is present.
func (o Order) Time() (LocalTime, bool) {
	if o.OrderTime == nil {
		return LocalTime{}, false
	}
	return *o.OrderTime, true
}

// DisplayID renders the order id for user-facing output, "N/A" when missing.
func (o Order) DisplayID() string {
	if o.ID == nil {
		return "N/A"
	}
	return strconv.FormatInt(*o.ID, 10)
}
