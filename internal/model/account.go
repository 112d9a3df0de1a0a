package model

// AccountKey names a role in the fixed sales chart.
type AccountKey string

const (
	AccountClients  AccountKey = "clients"
	AccountTVA20    AccountKey = "tva_20"
	AccountTVA55    AccountKey = "tva_55"
	AccountSales20  AccountKey = "sales_20"
	AccountSales55  AccountKey = "sales_55"
	AccountShipping AccountKey = "shipping"
)

// Account is one entry in the sales chart of accounts.
type Account struct {
	Key    AccountKey
	Number string // account number in the general ledger, e.g. "445712000"
	Label  string // written to the Commentaire column
}
