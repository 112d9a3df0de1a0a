package journal

import (
	"fmt"
	"io"

	"github.com/ecritures-dev/ecritures/internal/accounts"
	"github.com/ecritures-dev/ecritures/internal/importer"
	"github.com/ecritures-dev/ecritures/internal/model"
)

// Result is the outcome of one transformation.
type Result struct {
	Orders  int // distinct orders read from the export
	Days    int // distinct days covered
	Entries []model.Entry
}

// WriteCSV writes the generated journal.
func (r *Result) WriteCSV(w io.Writer) error {
	return WriteEntries(w, r.Entries)
}

// Transform parses a Shopify order export and generates the journal in
// one pass. Nothing is written on error: entries exist only in memory
// until the caller renders them.
func Transform(r io.Reader, chart *accounts.Chart, opts Options) (*Result, error) {
	parser := importer.DefaultRegistry().Get("shopify")
	orders, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("no orders found in export")
	}

	entries, err := NewGenerator(chart, opts).Generate(orders)
	if err != nil {
		return nil, err
	}

	days := make(map[string]bool)
	for _, o := range orders {
		days[o.Date.Format("2006-01-02")] = true
	}

	return &Result{
		Orders:  len(orders),
		Days:    len(days),
		Entries: entries,
	}, nil
}
