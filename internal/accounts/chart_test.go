package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecritures-dev/ecritures/internal/model"
)

func TestDefaultChart_FixedNumbers(t *testing.T) {
	chart := DefaultChart()

	want := map[model.AccountKey]string{
		model.AccountClients:  "411200000",
		model.AccountTVA20:    "445712000",
		model.AccountTVA55:    "445710500",
		model.AccountSales55:  "707000012",
		model.AccountSales20:  "707000011",
		model.AccountShipping: "708500011",
	}
	require.Len(t, chart.All(), len(want))
	for key, number := range want {
		a, ok := chart.Get(key)
		require.True(t, ok, "account %s should exist", key)
		assert.Equal(t, number, a.Number)
		assert.True(t, chart.Exists(number))
	}
}

func TestCustomChart_AppliesOverrides(t *testing.T) {
	chart, err := CustomChart(map[model.AccountKey]Override{
		model.AccountClients: {Number: "411000000"},
		model.AccountTVA55:   {Label: "TVA taux réduit"},
	})
	require.NoError(t, err)

	clients := chart.MustGet(model.AccountClients)
	assert.Equal(t, "411000000", clients.Number)
	assert.Equal(t, "Clients", clients.Label, "label keeps its default")

	tva55 := chart.MustGet(model.AccountTVA55)
	assert.Equal(t, "445710500", tva55.Number, "number keeps its default")
	assert.Equal(t, "TVA taux réduit", tva55.Label)

	assert.False(t, chart.Exists("411200000"), "overridden number is gone")
}

func TestCustomChart_UnknownKey(t *testing.T) {
	_, err := CustomChart(map[model.AccountKey]Override{
		"petty_cash": {Number: "530000000"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "petty_cash")
}

func TestMustGet_PanicsOnUnknownKey(t *testing.T) {
	chart := DefaultChart()
	assert.Panics(t, func() { chart.MustGet("nope") })
}
