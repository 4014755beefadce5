package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"restaurant-manager/menu-svc/internal/domain"
)

// ApplyPercent returns price * (1 + percent/100). The factor is built by
// shifting, so the result is exact and repeated calls never accumulate error.
func ApplyPercent(price decimal.Decimal, percent int) decimal.Decimal {
	factor := decimal.NewFromInt(int64(100 + percent)).Shift(-2)
	return price.Mul(factor)
}

// ValidatePercent rejects changes that would drive a price below zero.
func ValidatePercent(percent int) error {
	if percent < -100 {
		return fmt.Errorf("%w: price change of %d%% would make prices negative", domain.ErrInvalidArgument, percent)
	}
	return nil
}
