package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FlexInt64 decodes a JSON number or a string holding an integer.
type FlexInt64 int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt64) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	v, err := strconv.ParseInt(string(unquote(data)), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*n = FlexInt64(v)
	return nil
}

// FlexFloat64 decodes a JSON number or a string holding a number.
type FlexFloat64 float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat64) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	v, err := strconv.ParseFloat(string(unquote(data)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number %s", data)
	}
	*f = FlexFloat64(v)
	return nil
}

func unquote(data []byte) []byte {
	var s string
	if len(data) > 0 && data[0] == '"' && json.Unmarshal(data, &s) == nil {
		return bytes.TrimSpace([]byte(s))
	}
	return data
}
