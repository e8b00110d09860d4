package feed

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

var (
	ErrMissingRegion    = fmt.Errorf("observation without region")
	ErrMissingTimestamp = fmt.Errorf("observation without timestamp")
)

// Decode converts a raw feed document into an observation. Numeric fields
// are read leniently: anything that is not a number counts as zero, and an
// absent optional field stays nil. Only region and timestamp are required.
func Decode(data map[string]interface{}) (schema.Observation, error) {
	region, _ := data["region"].(string)
	region = strings.TrimSpace(region)
	if region == "" {
		return schema.Observation{}, ErrMissingRegion
	}

	ts, ok := timestamp(data["timestamp"])
	if !ok {
		return schema.Observation{}, ErrMissingTimestamp
	}

	o := schema.Observation{
		Region:    region,
		Timestamp: ts,
		Cases:     numberOrZero(data["cases"]),
		Delta:     numberOrZero(data["delta"]),
		Rate:      numberOrZero(data["rate"]),
		Deaths:    numberOrZero(data["deaths"]),
	}

	if v, ok := number(data["recovered"]); ok {
		o.Recovered = schema.Float64(v)
	}
	if v, ok := number(data["activeCases"]); ok {
		o.ActiveCases = schema.Float64(v)
	}
	if county, ok := data["mostAffectedCounty"].(string); ok {
		o.MostAffectedCounty = county
	}

	return o, nil
}

func numberOrZero(v interface{}) float64 {
	n, _ := number(v)
	return n
}

func number(v interface{}) (float64, bool) {
	var n float64
	switch value := v.(type) {
	case float64:
		n = value
	case float32:
		n = float64(value)
	case int64:
		n = float64(value)
	case int:
		n = float64(value)
	case int32:
		n = float64(value)
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// timestamp accepts native timestamps, RFC 3339 strings and unix
// milliseconds.
func timestamp(v interface{}) (time.Time, bool) {
	switch value := v.(type) {
	case time.Time:
		if value.IsZero() {
			return time.Time{}, false
		}
		return value, true
	case string:
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		ms, ok := number(v)
		if !ok || ms <= 0 {
			return time.Time{}, false
		}
		return time.Unix(0, int64(ms)*int64(time.Millisecond)).UTC(), true
	}
}
