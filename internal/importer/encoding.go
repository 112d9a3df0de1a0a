package importer

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText decodes raw export bytes to UTF-8 text. Shopify exports are
// UTF-8, sometimes with a BOM; files resaved through spreadsheet tools
// arrive in cp1252 or latin-1.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
		out, err := cm.NewDecoder().Bytes(data)
		if err == nil {
			return string(out), nil
		}
	}
	return "", errors.New("cannot decode file: not UTF-8, cp1252 or latin-1")
}
