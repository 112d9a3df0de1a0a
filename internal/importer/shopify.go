package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecritures-dev/ecritures/internal/model"
)

// ShopifyParser parses Shopify order-export CSVs (Orders → Export).
type ShopifyParser struct{}

const shopifyDateLayout = "2006-01-02"

// Column names as Shopify writes them.
const (
	colName      = "Name"
	colCreatedAt = "Created at"
	colPaidAt    = "Paid at"
	colTotal     = "Total"
	colShipping  = "Shipping"
)

var requiredColumns = []string{colName, colCreatedAt, colTotal}

// Format returns the parser name.
func (p *ShopifyParser) Format() string { return "shopify" }

// Parse reads a Shopify export and returns one Order per order name.
// The export repeats the name on every line-item row; only the first
// row of each order carries the totals, the rest are skipped.
func (p *ShopifyParser) Parse(r io.Reader) ([]model.Order, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1 // column count varies across Shopify export versions

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading export CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty export: no header row")
	}

	cols, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var orders []model.Order
	for i, rec := range records[1:] {
		name := strings.TrimSpace(field(rec, cols, colName))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		order, err := parseShopifyRow(rec, cols, name)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+2, name, err)
		}
		if order.Date.IsZero() {
			// Order was never paid and carries no usable date.
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s (is this a Shopify order export?)", strings.Join(missing, ", "))
	}
	return cols, nil
}

// field returns a named column value, or "" when the column is absent
// or the row is shorter than the header.
func field(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func parseShopifyRow(rec []string, cols map[string]int, name string) (model.Order, error) {
	date, err := parseDate(field(rec, cols, colPaidAt), field(rec, cols, colCreatedAt))
	if err != nil {
		return model.Order{}, err
	}

	total, err := parseAmount(field(rec, cols, colTotal))
	if err != nil {
		return model.Order{}, fmt.Errorf("parsing total: %w", err)
	}
	shipping, err := parseAmount(field(rec, cols, colShipping))
	if err != nil {
		return model.Order{}, fmt.Errorf("parsing shipping: %w", err)
	}

	tva20, tva55 := decimal.Zero, decimal.Zero
	for i := 1; i <= 2; i++ {
		value, err := parseAmount(field(rec, cols, fmt.Sprintf("Tax %d Value", i)))
		if err != nil {
			return model.Order{}, fmt.Errorf("parsing tax %d value: %w", i, err)
		}
		if !value.IsPositive() {
			continue
		}
		taxName := field(rec, cols, fmt.Sprintf("Tax %d Name", i))
		switch {
		case isReducedRate(taxName):
			tva55 = tva55.Add(value)
		case isStandardRate(taxName):
			tva20 = tva20.Add(value)
		default:
			return model.Order{}, fmt.Errorf("unknown VAT rate in tax name %q (value %s)", taxName, value.StringFixed(2))
		}
	}

	return model.Order{
		Name:     name,
		Date:     date,
		Total:    total,
		Shipping: shipping,
		TVA20:    tva20,
		TVA55:    tva55,
	}, nil
}

// parseDate parses a Shopify timestamp like "2025-10-20 18:13:20 +0200",
// preferring the paid-at date and falling back to created-at. Both empty
// yields a zero time.
func parseDate(paidAt, createdAt string) (time.Time, error) {
	s := strings.TrimSpace(paidAt)
	if s == "" {
		s = strings.TrimSpace(createdAt)
	}
	if s == "" {
		return time.Time{}, nil
	}
	if len(s) < len(shopifyDateLayout) {
		return time.Time{}, fmt.Errorf("parsing date %q: too short", s)
	}
	d, err := time.Parse(shopifyDateLayout, s[:len(shopifyDateLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

// parseAmount parses a monetary amount, accepting a decimal comma and
// space thousand separators. Empty means zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d.Round(2), nil
}

// isReducedRate reports whether a tax name designates the 5.5% rate,
// e.g. "FR TVA 5,5%".
func isReducedRate(taxName string) bool {
	return strings.Contains(taxName, "5,5") || strings.Contains(taxName, "5.5")
}

// isStandardRate reports whether a tax name designates the 20% rate.
func isStandardRate(taxName string) bool {
	return strings.Contains(taxName, "20")
}
