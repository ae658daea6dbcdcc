package extract

import (
	"fmt"
	"strconv"
)

// NullValue is the sentinel used when a document declares an explicit null.
// Chosen so it cannot collide with a legitimate string value of a setting.
const NullValue = "<null>"

// Normalize canonicalizes a raw scalar into the string form used for
// cross-file comparison. Display keeps the original typed value; only
// conflict detection goes through here.
func Normalize(v any) string {
	switch t := v.(type) {
	case nil:
		return NullValue
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; integral values print without
		// a decimal point so 5 and 5.0 compare equal.
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprintf("%v", t)
	}
}
