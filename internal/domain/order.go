package domain

import "time"

// Order is a committed dine-in or walk-in order. ReservationID is nil
// for walk-ins; the reference is non-owning, the slip's lifecycle is
// independent of the order's.
type Order struct {
	ID              int64
	BranchID        int64
	ReservationID   *int64
	CustomerName    string
	MemberCardID    *string
	WaiterID        int64
	Lines           []OrderLine
	Subtotal        float64
	DiscountPercent float64
	DiscountAmount  float64
	TotalAmount     float64
	OrderedAt       time.Time
}

// OrderLine is one dish-and-quantity entry. UnitPrice is the dish price
// captured at commit time, never the price the client sent.
type OrderLine struct {
	ID        int64
	OrderID   int64
	DishID    int64
	Quantity  int
	UnitPrice float64
}

// ValidateLines checks the structural rules on a proposed line list.
// Menu membership is checked separately against the store.
func ValidateLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return InvalidArgument("order must contain at least 1 line")
	}
	for _, line := range lines {
		if line.DishID < 1 {
			return InvalidArgument("dish id is required on every line")
		}
		if line.Quantity < 1 {
			return InvalidArgument("line quantity must be at least 1")
		}
	}
	return nil
}

// Totals is the result of cart aggregation.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	Total          float64
}

// ComputeTotal derives order totals from line items and a percentage
// discount. The same arithmetic runs in the cart UI; the committer
// re-derives it here so client-sent subtotals are never trusted.
func ComputeTotal(lines []OrderLine, discountPercent float64) Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	discount := subtotal * discountPercent / 100
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          subtotal - discount,
	}
}
