package models

// Order represents an order whose delivery address still needs coordinates.
type Order struct {
	ID      int     // ID is the unique identifier for the order.
	Address Address // Address is the delivery address to be geocoded.
}
