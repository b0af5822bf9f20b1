package conv

import (
	"encoding/json"
	"strconv"
)

// AsInt coerces JSON-RPC ids and similar loosely typed numbers to int, unknown values yield 0.
func AsInt(value interface{}) int {
	switch actual := value.(type) {
	case int:
		return actual
	case int32:
		return int(actual)
	case int64:
		return int(actual)
	case uint64:
		return int(actual)
	case float64:
		return int(actual)
	case float32:
		return int(actual)
	case json.Number:
		i, _ := actual.Int64()
		return int(i)
	case string:
		i, _ := strconv.Atoi(actual)
		return i
	case *int:
		if actual != nil {
			return *actual
		}
	}
	return 0
}
