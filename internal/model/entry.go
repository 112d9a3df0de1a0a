package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single row of the sales journal (one side of a double-entry).
type Entry struct {
	Account string          // account number from the chart, e.g. "411200000"
	Journal string          // journal code, e.g. "VT2"
	Date    time.Time       //nolint:revive // plain field name is clearest
	Label   string          // account label, the Commentaire column
	Debit   decimal.Decimal // zero if credit side
	Credit  decimal.Decimal // zero if debit side
	Piece   string          // N° Pièce: journal code + date as YYMMDD
}
