package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecritures-dev/ecritures/internal/accounts"
	"github.com/ecritures-dev/ecritures/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	Piece       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Piece, e.Description)
}

// Validate enforces 4 invariants on generated journal entries.
func Validate(entries []model.Entry, chart *accounts.Chart) []ValidationError {
	var errs []ValidationError

	// Group entries by piece reference.
	pieces := make(map[string][]model.Entry)
	var pieceOrder []string
	for _, e := range entries {
		if _, seen := pieces[e.Piece]; !seen {
			pieceOrder = append(pieceOrder, e.Piece)
		}
		pieces[e.Piece] = append(pieces[e.Piece], e)
	}

	// Invariant 1: each piece balances (sum(debits) == sum(credits)).
	for _, p := range pieceOrder {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, e := range pieces[p] {
			totalDebit = totalDebit.Add(e.Debit)
			totalCredit = totalCredit.Add(e.Credit)
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Piece:       p,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
	}

	for _, e := range entries {
		// Invariant 2: exactly one of debit/credit per row.
		hasDebit := !e.Debit.IsZero()
		hasCredit := !e.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Piece:       e.Piece,
				Description: fmt.Sprintf("row for account %s must have exactly one of debit or credit", e.Account),
			})
		}

		// Invariant 3: account is part of the chart.
		if !chart.Exists(e.Account) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Piece:       e.Piece,
				Description: fmt.Sprintf("unknown account %s", e.Account),
			})
		}

		// Invariant 4: exact decimals, no more than 2 decimal places.
		if !e.Debit.IsZero() && !e.Debit.Mul(hundred).Equal(e.Debit.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Piece:       e.Piece,
				Description: fmt.Sprintf("debit %s has more than 2 decimal places", e.Debit),
			})
		}
		if !e.Credit.IsZero() && !e.Credit.Mul(hundred).Equal(e.Credit.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Piece:       e.Piece,
				Description: fmt.Sprintf("credit %s has more than 2 decimal places", e.Credit),
			})
		}
	}

	return errs
}
