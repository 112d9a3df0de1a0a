package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents one Shopify order as read from the order export.
// The export repeats an order's name on every line-item row but carries
// the totals on the first row only; an Order is built from that row.
type Order struct {
	Name     string          // order reference, e.g. "#1042"
	Date     time.Time       // day of "Paid at", falling back to "Created at"
	Total    decimal.Decimal // order total, tax included
	Shipping decimal.Decimal
	TVA20    decimal.Decimal // VAT collected at the standard 20% rate
	TVA55    decimal.Decimal // VAT collected at the reduced 5.5% rate
}
