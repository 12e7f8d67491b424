package decision

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidNAV is returned when the NAV cannot be used as a divisor
	ErrInvalidNAV = errors.New("invalid NAV")
	// ErrInvalidPrice is returned for a non-finite or negative trade price
	ErrInvalidPrice = errors.New("invalid price")
)

// Premium returns (price - nav) / nav * 100
func Premium(price, nav float64) (float64, error) {
	if nav <= 0 || math.IsNaN(nav) || math.IsInf(nav, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidNAV, nav)
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	return (price - nav) / nav * 100, nil
}

// Direction names the sign of a premium the way the report shows it
func Direction(premium float64) string {
	if premium >= 0 {
		return "Premium"
	}
	return "Discount"
}
