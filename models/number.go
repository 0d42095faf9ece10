package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is an integer amount that tolerates quoted, fractional or garbage
// JSON input. Values that cannot be coerced become 0.
type Number int

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			*n = 0
			return nil
		}
	} else {
		raw = string(data)
	}

	v, _ := ParseInt(raw)
	*n = Number(v)
	return nil
}

// UnmarshalYAML accepts the same loose input as UnmarshalJSON.
func (n *Number) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		*n = 0
		return nil
	}
	v, _ := ParseInt(raw)
	*n = Number(v)
	return nil
}

// ParseInt reads the leading integer of s, ignoring surrounding whitespace
// and anything after the digits. ok is false when no digit was found.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// out of range: clamp like a float would saturate
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return int(v), true
}

// MulSat multiplies a and b, saturating at math.MinInt and math.MaxInt.
func MulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	overflow := p/b != a ||
		(a == -1 && b == math.MinInt) ||
		(b == -1 && a == math.MinInt)
	if !overflow {
		return p
	}
	if (a < 0) != (b < 0) {
		return math.MinInt
	}
	return math.MaxInt
}

// AddSat adds a and b, saturating at math.MinInt and math.MaxInt.
func AddSat(a, b int) int {
	s := a + b
	switch {
	case a > 0 && b > 0 && s < 0:
		return math.MaxInt
	case a < 0 && b < 0 && s >= 0:
		return math.MinInt
	}
	return s
}
