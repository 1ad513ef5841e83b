package fields

import (
	"strings"

	"github.com/shopspring/decimal"
)

// extendedNumberKeys are the Mongo extended-JSON wrappers seen in exported county dumps.
var extendedNumberKeys = []string{"$numberInt", "$numberLong", "$numberDouble", "$numberDecimal"}

// ParseBond converts a raw bond value to an exact decimal.
// Returns decimal.Zero for anything it cannot read; "$1,500.00" parses as 1500.
// JSON numbers arrive as float64, which NewFromFloat converts exactly.
func ParseBond(v interface{}) decimal.Decimal {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val)
	case float32:
		return decimal.NewFromFloat(float64(val))
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case int32:
		return decimal.NewFromInt(int64(val))
	case decimal.Decimal:
		return val
	case string:
		s := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(val))
		if s == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err == nil {
			return d
		}
	case map[string]interface{}:
		for _, key := range extendedNumberKeys {
			if inner, ok := val[key]; ok {
				return ParseBond(inner)
			}
		}
	}
	return decimal.Zero
}
