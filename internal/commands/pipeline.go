package commands

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecritures-dev/ecritures/internal/accounts"
	"github.com/ecritures-dev/ecritures/internal/config"
	"github.com/ecritures-dev/ecritures/internal/journal"
	"github.com/ecritures-dev/ecritures/internal/model"
)

// buildPipeline turns a config into the chart of accounts and generation
// options shared by the transform and serve commands.
func buildPipeline(cfg *config.Config) (*accounts.Chart, journal.Options, error) {
	overrides := make(map[model.AccountKey]accounts.Override, len(cfg.Accounts))
	for key, o := range cfg.Accounts {
		overrides[model.AccountKey(key)] = accounts.Override{Number: o.Number, Label: o.Label}
	}
	chart, err := accounts.CustomChart(overrides)
	if err != nil {
		return nil, journal.Options{}, err
	}

	opts := journal.Options{Journal: cfg.Journal.Code}

	switch cfg.Journal.GroupBy {
	case "", string(journal.GroupByOrder):
		opts.Grouping = journal.GroupByOrder
	case string(journal.GroupByDay):
		opts.Grouping = journal.GroupByDay
	default:
		return nil, journal.Options{}, fmt.Errorf("invalid group_by %q: want %q or %q",
			cfg.Journal.GroupBy, journal.GroupByOrder, journal.GroupByDay)
	}

	if cfg.Journal.ShippingVATRate != "" {
		rate, err := decimal.NewFromString(cfg.Journal.ShippingVATRate)
		if err != nil {
			return nil, journal.Options{}, fmt.Errorf("invalid shipping_vat_rate %q: %w", cfg.Journal.ShippingVATRate, err)
		}
		if rate.IsNegative() {
			return nil, journal.Options{}, fmt.Errorf("invalid shipping_vat_rate %q: must not be negative", cfg.Journal.ShippingVATRate)
		}
		opts.ShippingVATRate = rate
	}

	return chart, opts, nil
}
