package piece

import "time"

const (
	entryDateLayout = "020106" // DDMMYY, the Date écriture column
	refDateLayout   = "060102" // YYMMDD, the date part of N° Pièce
)

// EntryDate formats a date as DDMMYY for the Date écriture column.
func EntryDate(t time.Time) string {
	return t.Format(entryDateLayout)
}

// ParseEntryDate parses a DDMMYY entry date back into a time.
func ParseEntryDate(s string) (time.Time, error) {
	return time.Parse(entryDateLayout, s)
}

// Ref returns the N° Pièce for a journal code and date, e.g. "VT2251020".
func Ref(journal string, t time.Time) string {
	return journal + t.Format(refDateLayout)
}
