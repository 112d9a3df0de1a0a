package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/charmap"
)

const exportHeader = "Name,Created at,Paid at,Total,Shipping,Tax 1 Name,Tax 1 Value,Tax 2 Name,Tax 2 Value,Lineitem name"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParse_SingleOrder(t *testing.T) {
	p := &ShopifyParser{}
	input := exportHeader + "\n" +
		`#1001,2025-10-18 09:12:00 +0200,2025-10-20 18:13:20 +0200,125.00,5.00,FR TVA 20%,20.00,,,Mug`
	orders, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "#1001", o.Name)
	assert.Equal(t, "2025-10-20", o.Date.Format("2006-01-02"), "paid-at date wins")
	assert.True(t, o.Total.Equal(dec("125.00")), "total: got %s", o.Total)
	assert.True(t, o.Shipping.Equal(dec("5.00")))
	assert.True(t, o.TVA20.Equal(dec("20.00")))
	assert.True(t, o.TVA55.IsZero())
}

func TestParse_SkipsContinuationRows(t *testing.T) {
	p := &ShopifyParser{}
	input := exportHeader + "\n" +
		`#1001,2025-10-20 10:00:00 +0200,2025-10-20 10:00:00 +0200,50.00,0,FR TVA 20%,8.33,,,Mug` + "\n" +
		`#1001,,,,,,,,,Tote bag` + "\n" +
		`#1002,2025-10-21 10:00:00 +0200,2025-10-21 10:00:00 +0200,21.10,0,"FR TVA 5,5%",1.10,,,Tisane`
	orders, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "#1001", orders[0].Name)
	assert.Equal(t, "#1002", orders[1].Name)
	assert.True(t, orders[1].TVA55.Equal(dec("1.10")))
	assert.True(t, orders[1].TVA20.IsZero())
}

func TestParse_BothRatesOnOneOrder(t *testing.T) {
	p := &ShopifyParser{}
	input := exportHeader + "\n" +
		`#1003,2025-10-22 10:00:00 +0200,2025-10-22 10:00:00 +0200,80.00,0,FR TVA 20%,10.00,"FR TVA 5,5%",2.20,Panier`
	orders, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].TVA20.Equal(dec("10.00")))
	assert.True(t, orders[0].TVA55.Equal(dec("2.20")))
}

func TestParse_DecimalComma(t *testing.T) {
	p := &ShopifyParser{}
	input := exportHeader + "\n" +
		`#1004,2025-10-22 10:00:00 +0200,,"1 234,56","4,90",FR TVA 20%,"205,76",,,Caisse`
	orders, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Total.Equal(dec("1234.56")), "got %s", orders[0].Total)
	assert.True(t, orders[0].Shipping.Equal(dec("4.90")))
}

func TestParse_CreatedAtFallback(t *testing.T) {
	p := &ShopifyParser{}
	input := exportHeader + "\n" +
		`#1005,2025-10-23 10:00:00 +0200,,10.00,0,FR TVA 20%,1.67,,,Mug`
	orders, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "2025-10-23", orders[0].Date.Format("2006-01-02"))
}

func TestParse_SkipsDatelessOrders(t *testing.T) {
	p := &ShopifyParser{}
	input := exportHeader + "\n" +
		`#1006,,,10.00,0,FR TVA 20%,1.67,,,Mug`
	orders, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestParse_UnknownVATRate(t *testing.T) {
	p := &ShopifyParser{}
	input := exportHeader + "\n" +
		`#1007,2025-10-23 10:00:00 +0200,,10.00,0,FR TVA 10%,0.91,,,Livre`
	_, err := p.Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown VAT rate")
	assert.Contains(t, err.Error(), "#1007")
}

func TestParse_ZeroValueUnknownNameIsIgnored(t *testing.T) {
	// A tax column pair with no value must not trip the rate check.
	p := &ShopifyParser{}
	input := exportHeader + "\n" +
		`#1008,2025-10-23 10:00:00 +0200,,10.00,0,,0,,,Carte`
	orders, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].TVA20.IsZero())
	assert.True(t, orders[0].TVA55.IsZero())
}

func TestParse_MalformedDate(t *testing.T) {
	p := &ShopifyParser{}
	input := exportHeader + "\n" +
		`#1009,20/10/2025 10:00,,10.00,0,FR TVA 20%,1.67,,,Mug`
	_, err := p.Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestParse_MissingColumns(t *testing.T) {
	p := &ShopifyParser{}
	input := "Foo,Bar\n1,2"
	_, err := p.Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "Name")
}

func TestParse_UTF8BOM(t *testing.T) {
	p := &ShopifyParser{}
	input := "\xEF\xBB\xBF" + exportHeader + "\n" +
		`#1010,2025-10-23 10:00:00 +0200,,10.00,0,FR TVA 20%,1.67,,,Mug`
	orders, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "#1010", orders[0].Name)
}

func TestParse_Latin1Fallback(t *testing.T) {
	utf8Input := exportHeader + "\n" +
		`#1011,2025-10-23 10:00:00 +0200,,10.00,0,FR TVA 20% réduite à zéro près,1.67,,,Mug`
	encoded, err := charmap.ISO8859_1.NewEncoder().String(utf8Input)
	require.NoError(t, err)

	p := &ShopifyParser{}
	orders, err := p.Parse(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].TVA20.Equal(dec("1.67")))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	require.NotNil(t, r.Get("shopify"))
	require.NotNil(t, r.Get("SHOPIFY"), "lookup is case-insensitive")
	assert.Nil(t, r.Get("chase"))

	assert.Panics(t, func() { r.Register(&ShopifyParser{}) }, "duplicate format")
}
