package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is an optional numeric field that tolerates loosely typed input.
// JSON numbers and numeric strings decode to a value; anything else (null,
// booleans, non-numeric text) decodes to an absent Number instead of failing
// the whole document.
type Number struct {
	Value float64
	Valid bool
}

// NewNumber returns a present Number.
func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Get returns the value and whether it was supplied.
func (n Number) Get() (float64, bool) {
	return n.Value, n.Valid
}

// IsZero reports whether the number is absent. Used by the omitzero tag.
func (n Number) IsZero() bool {
	return !n.Valid
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	if v, ok := NumberFromUnknown(raw); ok {
		*n = NewNumber(v)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// NumberFromUnknown coerces an arbitrary decoded JSON value into a float64.
// Returns false for anything that is not a finite number or a numeric string.
func NumberFromUnknown(v interface{}) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case int32:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Flag is an optional boolean that distinguishes "not supplied" from false.
// Accepts JSON booleans, "true"/"false"/"yes"/"no" strings and 1/0.
type Flag struct {
	Value bool
	Valid bool
}

// NewFlag returns a present Flag.
func NewFlag(v bool) Flag {
	return Flag{Value: v, Valid: true}
}

// IsTrue reports whether the flag was supplied and is true.
func (f Flag) IsTrue() bool {
	return f.Valid && f.Value
}

// IsFalse reports whether the flag was supplied and is explicitly false.
func (f Flag) IsFalse() bool {
	return f.Valid && !f.Value
}

// IsZero reports whether the flag is absent. Used by the omitzero tag.
func (f Flag) IsZero() bool {
	return !f.Valid
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = Flag{}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch x := raw.(type) {
	case bool:
		*f = NewFlag(x)
	case float64:
		if x == 1 {
			*f = NewFlag(true)
		} else if x == 0 {
			*f = NewFlag(false)
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "y", "1":
			*f = NewFlag(true)
		case "false", "no", "n", "0":
			*f = NewFlag(false)
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
