// Package coerce turns loosely typed spreadsheet cells into Go values.
// Nothing here returns an error: malformed input degrades to a zero value.
package coerce

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// numberToken is the first signed decimal in a cell, with optional digit grouping.
var numberToken = regexp.MustCompile(`-?\d[\d,]*(?:\.\d+)?`)

// Number parses currency-ish input such as "1,23,456.50" or "Rs. 4,500/-".
// The first number in the text is taken and grouping commas are dropped, so
// currency prefixes and the trailing "/-" are ignored.
func Number(v interface{}) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return numberFromString(x)
	case json.Number:
		return numberFromString(x.String())
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func numberFromString(s string) float64 {
	tok := numberToken.FindString(s)
	if tok == "" {
		return 0
	}
	f, err := cast.ToFloat64E(strings.ReplaceAll(tok, ",", ""))
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// String returns "" for nil and the trimmed text form of anything else.
func String(v interface{}) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// Int accepts only values that are already numeric; text such as "42" yields 0.
func Int(v interface{}) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case float32:
		return int(x)
	case int:
		return x
	case int64:
		return int(x)
	case int32:
		return int(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i)
		}
		if f, err := x.Float64(); err == nil {
			return int(f)
		}
	}
	return 0
}
