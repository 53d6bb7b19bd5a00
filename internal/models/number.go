package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric field that never fails to decode. Numbers decode as-is,
// numeric strings are parsed, and anything else (null, booleans, garbage)
// becomes 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = 0

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			*n = Number(f)
		}
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	return json.Marshal(f)
}

// Float returns the value as a float64.
func (n Number) Float() float64 {
	return float64(n)
}

// Int rounds the value to the nearest integer.
func (n Number) Int() int {
	return int(math.Round(float64(n)))
}
