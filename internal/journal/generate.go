package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecritures-dev/ecritures/internal/accounts"
	"github.com/ecritures-dev/ecritures/internal/model"
	"github.com/ecritures-dev/ecritures/internal/piece"
)

// Grouping selects how orders are batched into journal entries.
type Grouping string

const (
	// GroupByOrder emits one balanced entry per order.
	GroupByOrder Grouping = "order"
	// GroupByDay sums all orders of a day into one balanced entry.
	GroupByDay Grouping = "day"
)

// DefaultJournalCode is the sales journal code in the target software.
const DefaultJournalCode = "VT2"

// Options configure entry generation.
type Options struct {
	Journal         string          // journal code; DefaultJournalCode when empty
	Grouping        Grouping        // GroupByOrder when empty
	ShippingVATRate decimal.Decimal // VAT percent included in the shipping charge: 0 (charge is ex-tax) or 20
}

// Generator builds balanced journal entries from parsed orders.
type Generator struct {
	chart *accounts.Chart
	opts  Options
}

// NewGenerator creates a Generator over a chart of accounts.
func NewGenerator(chart *accounts.Chart, opts Options) *Generator {
	if opts.Journal == "" {
		opts.Journal = DefaultJournalCode
	}
	if opts.Grouping == "" {
		opts.Grouping = GroupByOrder
	}
	return &Generator{chart: chart, opts: opts}
}

// group is one batch of orders booked as a single balanced entry.
type group struct {
	date     time.Time
	name     string // order name; empty in day grouping
	total    decimal.Decimal
	shipping decimal.Decimal
	tva20    decimal.Decimal
	tva55    decimal.Decimal
}

// Generate groups orders, derives the ex-tax split and emits balanced
// entries. The result is validated before being returned; any violation
// aborts with no entries.
func (g *Generator) Generate(orders []model.Order) ([]model.Entry, error) {
	var entries []model.Entry
	for _, grp := range g.groupOrders(orders) {
		if grp.total.IsZero() {
			// Fully discounted or refunded order, nothing to book.
			continue
		}
		entries = append(entries, g.entriesFor(grp)...)
	}

	if verrs := Validate(entries, g.chart); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}
	return entries, nil
}

// groupOrders batches orders per the configured grouping, sorted by date
// then order name so identical input yields identical output.
func (g *Generator) groupOrders(orders []model.Order) []group {
	var groups []group

	switch g.opts.Grouping {
	case GroupByDay:
		byDay := make(map[string]*group)
		for _, o := range orders {
			key := o.Date.Format("2006-01-02")
			grp, ok := byDay[key]
			if !ok {
				grp = &group{date: o.Date}
				byDay[key] = grp
			}
			grp.total = grp.total.Add(o.Total)
			grp.shipping = grp.shipping.Add(o.Shipping)
			grp.tva20 = grp.tva20.Add(o.TVA20)
			grp.tva55 = grp.tva55.Add(o.TVA55)
		}
		for _, grp := range byDay {
			groups = append(groups, *grp)
		}
	default:
		for _, o := range orders {
			groups = append(groups, group{
				date:     o.Date,
				name:     o.Name,
				total:    o.Total,
				shipping: o.Shipping,
				tva20:    o.TVA20,
				tva55:    o.TVA55,
			})
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].date.Equal(groups[j].date) {
			return groups[i].date.Before(groups[j].date)
		}
		return groups[i].name < groups[j].name
	})
	return groups
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	rate20  = decimal.RequireFromString("0.20")
	rate55  = decimal.RequireFromString("0.055")
)

// split holds the credit side of one entry, all amounts ex-tax where
// applicable.
type split struct {
	tva20      decimal.Decimal
	tva55      decimal.Decimal
	sales20    decimal.Decimal
	sales55    decimal.Decimal
	shippingHT decimal.Decimal
}

// splitGroup derives the revenue and shipping amounts from the collected
// VAT. Sales are reconstructed from the VAT amounts (VAT / rate), and the
// rounding residue against the TTC total is folded into the 20% sales
// line so the entry balances exactly.
func (g *Generator) splitGroup(grp group) split {
	shippingHT := grp.shipping
	shippingTVA := decimal.Zero
	if g.opts.ShippingVATRate.IsPositive() && grp.shipping.IsPositive() {
		divisor := one.Add(g.opts.ShippingVATRate.Div(hundred))
		shippingHT = grp.shipping.Div(divisor).Round(2)
		shippingTVA = grp.shipping.Sub(shippingHT)
	}

	// VAT collected on products at 20%: total 20% VAT minus the share
	// already accounted for by shipping.
	productTVA20 := decimal.Max(decimal.Zero, grp.tva20.Sub(shippingTVA))

	sales20 := decimal.Zero
	if productTVA20.IsPositive() {
		sales20 = productTVA20.Div(rate20).Round(2)
	}
	sales55 := decimal.Zero
	if grp.tva55.IsPositive() {
		sales55 = grp.tva55.Div(rate55).Round(2)
	}

	credits := grp.tva20.Add(grp.tva55).Add(sales20).Add(sales55).Add(shippingHT)
	if diff := grp.total.Sub(credits); !diff.IsZero() {
		sales20 = sales20.Add(diff)
	}

	return split{
		tva20:      grp.tva20,
		tva55:      grp.tva55,
		sales20:    sales20,
		sales55:    sales55,
		shippingHT: shippingHT,
	}
}

// entriesFor emits the rows of one balanced entry: the client debit for
// the TTC total, then the VAT, sales and shipping credits that are
// positive.
func (g *Generator) entriesFor(grp group) []model.Entry {
	sp := g.splitGroup(grp)
	ref := piece.Ref(g.opts.Journal, grp.date)

	row := func(key model.AccountKey, debit, credit decimal.Decimal) model.Entry {
		a := g.chart.MustGet(key)
		return model.Entry{
			Account: a.Number,
			Journal: g.opts.Journal,
			Date:    grp.date,
			Label:   a.Label,
			Debit:   debit,
			Credit:  credit,
			Piece:   ref,
		}
	}

	entries := []model.Entry{row(model.AccountClients, grp.total, decimal.Zero)}

	credits := []struct {
		key    model.AccountKey
		amount decimal.Decimal
	}{
		{model.AccountTVA20, sp.tva20},
		{model.AccountTVA55, sp.tva55},
		{model.AccountSales55, sp.sales55},
		{model.AccountSales20, sp.sales20},
		{model.AccountShipping, sp.shippingHT},
	}
	for _, c := range credits {
		if c.amount.IsPositive() {
			entries = append(entries, row(c.key, decimal.Zero, c.amount))
		}
	}
	return entries
}
