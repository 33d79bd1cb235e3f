package indexes

import "strconv"

// encodeKey normalizes an indexed field value into a map key. The type
// prefix keeps, say, the string "1" from colliding with the number 1, and
// all integer widths BSON decoding produces collapse onto the same key as
// the equivalent float.
func encodeKey(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return "s:" + v, true
	case bool:
		if v {
			return "b:1", true
		}
		return "b:0", true
	case float64:
		return "n:" + strconv.FormatFloat(v, 'g', -1, 64), true
	case float32:
		return "n:" + strconv.FormatFloat(float64(v), 'g', -1, 64), true
	case int:
		return "n:" + strconv.FormatFloat(float64(v), 'g', -1, 64), true
	case int32:
		return "n:" + strconv.FormatFloat(float64(v), 'g', -1, 64), true
	case int64:
		return "n:" + strconv.FormatFloat(float64(v), 'g', -1, 64), true
	default:
		return "", false
	}
}
