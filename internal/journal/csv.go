package journal

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/ecritures-dev/ecritures/internal/model"
	"github.com/ecritures-dev/ecritures/internal/piece"
)

// Header is the column header row of the journal CSV, in the order the
// accounting software imports them.
var Header = []string{
	"N° Compte", "Journal", "Date écriture", "Commentaire",
	"Montant débit", "Montant crédit", "N° Pièce", "Date échéance", "Lettrage",
}

// delimiter is what the accounting software's CSV import expects.
const delimiter = ';'

const (
	numFields  = 9
	colAccount = 0
	colJournal = 1
	colDate    = 2
	colLabel   = 3
	colDebit   = 4
	colCredit  = 5
	colPiece   = 6
	colDue     = 7
	colLetter  = 8
)

// WriteEntries writes entries (including header) as a semicolon-separated
// journal CSV.
func WriteEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadEntries reads a journal CSV back into entries.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// MarshalEntry converts an Entry to a CSV row. The Date échéance and
// Lettrage columns are always empty.
func MarshalEntry(e model.Entry) []string {
	row := make([]string, numFields)
	row[colAccount] = e.Account
	row[colJournal] = e.Journal
	row[colDate] = piece.EntryDate(e.Date)
	row[colLabel] = e.Label

	if !e.Debit.IsZero() {
		row[colDebit] = e.Debit.StringFixed(2)
	}
	if !e.Credit.IsZero() {
		row[colCredit] = e.Credit.StringFixed(2)
	}

	row[colPiece] = e.Piece
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (model.Entry, error) {
	if len(record) != numFields {
		return model.Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := piece.ParseEntryDate(record[colDate])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var debit, credit decimal.Decimal

	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return model.Entry{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}

	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return model.Entry{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return model.Entry{
		Account: record[colAccount],
		Journal: record[colJournal],
		Date:    date,
		Label:   record[colLabel],
		Debit:   debit,
		Credit:  credit,
		Piece:   record[colPiece],
	}, nil
}
