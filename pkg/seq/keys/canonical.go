package keys

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Canonical encodes v into its default equivalence key. Two values that
// encode to the same key are treated as the same cache entry even when they
// are distinct instances.
func Canonical(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "nil", nil
	case string:
		return "s:" + t, nil
	case bool:
		return "b:" + strconv.FormatBool(t), nil
	case int:
		return "i:" + strconv.FormatInt(int64(t), 10), nil
	case int8:
		return "i:" + strconv.FormatInt(int64(t), 10), nil
	case int16:
		return "i:" + strconv.FormatInt(int64(t), 10), nil
	case int32:
		return "i:" + strconv.FormatInt(int64(t), 10), nil
	case int64:
		return "i:" + strconv.FormatInt(t, 10), nil
	case uint:
		return "u:" + strconv.FormatUint(uint64(t), 10), nil
	case uint8:
		return "u:" + strconv.FormatUint(uint64(t), 10), nil
	case uint16:
		return "u:" + strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return "u:" + strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return "u:" + strconv.FormatUint(t, 10), nil
	case float32:
		return floatKey(float64(t)), nil
	case float64:
		return floatKey(t), nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("canonical key for %T: %w", v, err)
		}
		return "j:" + string(raw), nil
	}
}

// floatKey keeps integral floats and integers distinct while still encoding
// NaN and the infinities, which json would reject.
func floatKey(f float64) string {
	if math.IsNaN(f) {
		return "f:nan"
	}
	return "f:" + strconv.FormatFloat(f, 'g', -1, 64)
}
