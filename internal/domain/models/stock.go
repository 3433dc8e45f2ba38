package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Value holds one raw JSON scalar from the upstream payload.
//
// The stocks endpoint is not strict about types: prices arrive as numbers on
// some pages and as strings on others. Value keeps the original JSON text and
// only decides how to print it at display time (see String).
type Value struct {
	raw json.RawMessage
}

// RawValue builds a Value from literal JSON text, e.g. `143.5` or `"5-January-2000"`.
func RawValue(raw string) Value {
	return Value{raw: json.RawMessage(raw)}
}

// UnmarshalJSON stores the raw token without interpreting it.
func (v *Value) UnmarshalJSON(b []byte) error {
	v.raw = append(v.raw[:0], b...)
	return nil
}

// MarshalJSON writes the original token back, or null when the field was absent.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// String renders the value for a table cell.
//
// Rules:
//   - absent or null: ""
//   - string: the unquoted text, verbatim
//   - number: shortest decimal form (143.50 -> "143.5", 1e3 -> "1000")
//   - anything else: the raw JSON text
func (v Value) String() string {
	s := bytes.TrimSpace(v.raw)
	if len(s) == 0 || string(s) == "null" {
		return ""
	}
	switch c := s[0]; {
	case c == '"':
		var str string
		if err := json.Unmarshal(s, &str); err == nil {
			return str
		}
	case c == '-' || (c >= '0' && c <= '9'):
		if d, err := decimal.NewFromString(string(s)); err == nil {
			return d.String()
		}
	}
	return string(s)
}

// Int is a lenient integer used for pagination metadata.
//
// Numbers and numeric strings are accepted (fractions are truncated). Any other
// token decodes as 0 without failing the surrounding document, so one odd field
// never throws away the whole page.
type Int int

// UnmarshalJSON never returns an error; unparseable input yields 0.
func (n *Int) UnmarshalJSON(b []byte) error {
	*n = 0
	s := strings.TrimSpace(string(b))
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Int(f)
	return nil
}

// StockRecord is one daily OHLC row as served by the stocks endpoint.
type StockRecord struct {
	Date  Value `json:"date"`
	Open  Value `json:"open"`
	High  Value `json:"high"`
	Low   Value `json:"low"`
	Close Value `json:"close"`
}

// Cells returns the record's display cells in table column order:
// date, open, high, low, close.
func (r StockRecord) Cells() []string {
	return []string{
		r.Date.String(),
		r.Open.String(),
		r.High.String(),
		r.Low.String(),
		r.Close.String(),
	}
}

// PageResponse is one fetch's full payload: a page of records plus
// pagination metadata.
//
// ResponseStatus is only set when the transport outcome was not HTTP 200
// (408 is substituted locally when the request never reached the server).
// It is the single signal used to tell "fetch failed" apart from
// "fetch succeeded with zero rows".
type PageResponse struct {
	Page           Int           `json:"page"`
	PerPage        Int           `json:"per_page"`
	Total          Int           `json:"total"`
	TotalPages     Int           `json:"total_pages"`
	Data           []StockRecord `json:"data"`
	ResponseStatus *Int          `json:"responseStatus,omitempty"`
}

// MaxTotalPages bounds how many pages a single payload may announce. Larger
// total_pages values are clamped so page-sized allocations stay small.
const MaxTotalPages = 10000

// Failed reports whether the payload carries a non-success transport status.
// A zero responseStatus counts as absent.
func (p PageResponse) Failed() bool {
	return p.ResponseStatus != nil && *p.ResponseStatus != 0
}

// Status returns the HTTP status the payload was produced with (200 when no
// ResponseStatus is recorded).
func (p PageResponse) Status() int {
	if !p.Failed() {
		return 200
	}
	return int(*p.ResponseStatus)
}

// PageCount returns total_pages limited to 0..MaxTotalPages. clamped reports
// whether the announced value was above the limit.
func (p PageResponse) PageCount() (n int, clamped bool) {
	n = int(p.TotalPages)
	switch {
	case n < 0:
		return 0, false
	case n > MaxTotalPages:
		return MaxTotalPages, true
	}
	return n, false
}
