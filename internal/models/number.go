package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a lenient numeric field. Clients send numbers or numeric strings
// and frequently leave fields blank, so Valid records whether a usable value
// was supplied.
type Number struct {
	Float64 float64
	Valid   bool
}

// NewNumber returns a present Number.
func NewNumber(v float64) Number {
	return Number{Float64: v, Valid: true}
}

// ParseNumber converts free-form input into a Number. Malformed input yields
// an absent zero rather than an error.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return NewNumber(v)
}

// Float returns the value, or 0 when absent or not finite.
func (n Number) Float() float64 {
	if !n.Valid || math.IsNaN(n.Float64) || math.IsInf(n.Float64, 0) {
		return 0
	}
	return n.Float64
}

// IsZero reports whether the number is absent.
func (n Number) IsZero() bool {
	return !n.Valid
}

func (n Number) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Float64, 'f', -1, 64)
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid || math.IsNaN(n.Float64) || math.IsInf(n.Float64, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Float64, 'f', -1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on content.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = Number{}
			return nil
		}
		*n = ParseNumber(s)
		return nil
	}
	*n = ParseNumber(string(data))
	return nil
}

// Scan implements sql.Scanner
func (n *Number) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*n = Number{}
	case float64:
		*n = NewNumber(v)
	case float32:
		*n = NewNumber(float64(v))
	case int64:
		*n = NewNumber(float64(v))
	case []byte:
		*n = ParseNumber(string(v))
	case string:
		*n = ParseNumber(v)
	default:
		return fmt.Errorf("cannot scan %T into Number", value)
	}
	return nil
}

// Value implements driver.Valuer
func (n Number) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Float(), nil
}

// GormDataType maps the column to a float type.
func (Number) GormDataType() string {
	return "float"
}
