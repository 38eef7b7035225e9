package decimalx

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// FromJSONValue parses a raw JSON value that may carry a price either as a
// number or as a quoted string. Missing, null, or malformed values report false.
func FromJSONValue(raw []byte) (decimal.Decimal, bool) {
	s := string(bytes.TrimSpace(raw))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return decimal.Decimal{}, false
	}
	res, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return res, true
}
