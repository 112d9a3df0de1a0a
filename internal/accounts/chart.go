package accounts

import (
	"fmt"

	"github.com/ecritures-dev/ecritures/internal/model"
)

// Chart provides lookup over the six sales accounts every journal row
// must resolve to.
type Chart struct {
	accounts []model.Account
	byKey    map[model.AccountKey]model.Account
	byNumber map[string]model.Account
}

// Override replaces the number and/or label of one chart account.
// Empty fields keep the default.
type Override struct {
	Number string
	Label  string
}

// Default returns the sales chart as expected by the accounting software.
func Default() []model.Account {
	return []model.Account{
		{Key: model.AccountClients, Number: "411200000", Label: "Clients"},
		{Key: model.AccountTVA20, Number: "445712000", Label: "TVA 20%"},
		{Key: model.AccountTVA55, Number: "445710500", Label: "TVA 5,5%"},
		{Key: model.AccountSales55, Number: "707000012", Label: "Ventes produits finis TVA reduite"},
		{Key: model.AccountSales20, Number: "707000011", Label: "Ventes marchandises TVA normale"},
		{Key: model.AccountShipping, Number: "708500011", Label: "Ports et frais accessoires factures"},
	}
}

// NewChart creates a Chart from a slice of accounts.
func NewChart(accounts []model.Account) *Chart {
	byKey := make(map[model.AccountKey]model.Account, len(accounts))
	byNumber := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byKey[a.Key] = a
		byNumber[a.Number] = a
	}
	return &Chart{accounts: accounts, byKey: byKey, byNumber: byNumber}
}

// DefaultChart returns a Chart over the default sales accounts.
func DefaultChart() *Chart {
	return NewChart(Default())
}

// CustomChart returns the default chart with overrides applied.
// Override keys must name existing chart accounts.
func CustomChart(overrides map[model.AccountKey]Override) (*Chart, error) {
	accts := Default()
	known := make(map[model.AccountKey]int, len(accts))
	for i, a := range accts {
		known[a.Key] = i
	}
	for key, o := range overrides {
		i, ok := known[key]
		if !ok {
			return nil, fmt.Errorf("unknown account key %q", key)
		}
		if o.Number != "" {
			accts[i].Number = o.Number
		}
		if o.Label != "" {
			accts[i].Label = o.Label
		}
	}
	return NewChart(accts), nil
}

// All returns all accounts in chart order.
func (c *Chart) All() []model.Account {
	return c.accounts
}

// Get returns an account by key.
func (c *Chart) Get(key model.AccountKey) (model.Account, bool) {
	a, ok := c.byKey[key]
	return a, ok
}

// MustGet returns an account by key, panicking on an unknown key.
// The six keys are fixed at compile time, so a miss is a programming error.
func (c *Chart) MustGet(key model.AccountKey) model.Account {
	a, ok := c.byKey[key]
	if !ok {
		panic("unknown account key: " + string(key))
	}
	return a
}

// Exists reports whether an account number is part of the chart.
func (c *Chart) Exists(number string) bool {
	_, ok := c.byNumber[number]
	return ok
}
