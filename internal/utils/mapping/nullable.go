package mapping

import (
	"time"

	"github.com/shopspring/decimal"
)

// toNullable returns nil for the empty string so optional columns are stored as NULL.
func toNullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromNullable(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fromNullableTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func fromNullDecimal(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
