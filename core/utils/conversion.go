package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToPrimaryKey converts a decoded value to a positive integer primary key.
// It handles integer types, integral floats, json.Number and numeric strings.
// Anything else (booleans, fractions, overflow, non-positive values) reports false.
func ToPrimaryKey(val any) (int, bool) {
	var pk int64
	switch v := val.(type) {
	case int:
		pk = int64(v)
	case int64:
		pk = v
	case int32:
		pk = int64(v)
	case int16:
		pk = int64(v)
	case int8:
		pk = int64(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		pk = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		pk = int64(v)
	case uint32:
		pk = int64(v)
	case uint16:
		pk = int64(v)
	case uint8:
		pk = int64(v)
	case float64:
		return floatToPrimaryKey(v)
	case float32:
		return floatToPrimaryKey(float64(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			pk = i
			break
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToPrimaryKey(f)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		pk = i
	case []byte:
		return ToPrimaryKey(string(v))
	default:
		return 0, false
	}

	if pk <= 0 || pk > math.MaxInt {
		return 0, false
	}
	return int(pk), true
}

func floatToPrimaryKey(f float64) (int, bool) {
	if f != math.Trunc(f) || f <= 0 || f > 1<<53 {
		return 0, false
	}
	return int(f), true
}
