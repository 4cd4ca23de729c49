package privfolio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity represents a number of shares.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a share count like "10" or "2.5".
func ParseQuantity(str string) (Quantity, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", str, err)
	}
	return Quantity{value: value}, nil
}

// String returns the plain decimal representation.
func (q Quantity) String() string { return q.value.String() }

func (q Quantity) Equal(n Quantity) bool { return q.value.Equal(n.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) IsPositive() bool      { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool      { return q.value.IsNegative() }
