package models

import (
	"encoding/json"
	"math"
)

// JSONMap holds submitter-provided fields the service does not interpret.
// It is stored inline next to the known fields of a document.
type JSONMap map[string]interface{}

// marshalFlat encodes known (already a JSON object) and merges extra keys into it.
// Known fields win over extras with the same key.
func marshalFlat(known interface{}, extra JSONMap) ([]byte, error) {
	raw, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return raw, nil
	}

	merged := make(map[string]json.RawMessage, len(extra))
	for k, v := range extra {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		merged[k] = b
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}

	return json.Marshal(merged)
}

// unmarshalFlat decodes data into known and returns the keys that known does not claim.
func unmarshalFlat(data []byte, known interface{}, knownKeys ...string) (JSONMap, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}

	var all JSONMap
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range knownKeys {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// WholeNumber converts a decoded JSON or BSON number to an integer. Floats
// must have no fractional part; values outside the int32 range are rejected.
func WholeNumber(v interface{}) (int64, bool) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.Abs(x) > math.MaxInt32 {
			return 0, false
		}
		n = int64(x)
	default:
		return 0, false
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return n, true
}
