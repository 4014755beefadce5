package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateItemFields checks the attributes supplied when an item is created.
func ValidateItemFields(name string, category Category, servingSize, numCalories int, retail, wholesale decimal.Decimal) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: item name is empty", ErrInvalidArgument)
	case !category.Valid():
		return fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, string(category))
	case servingSize <= 0:
		return fmt.Errorf("%w: serving size must be positive, got %d", ErrInvalidArgument, servingSize)
	case numCalories < 0:
		return fmt.Errorf("%w: calories must not be negative, got %d", ErrInvalidArgument, numCalories)
	case retail.IsNegative():
		return fmt.Errorf("%w: retail price must not be negative, got %s", ErrInvalidArgument, retail)
	case wholesale.IsNegative():
		return fmt.Errorf("%w: wholesale price must not be negative, got %s", ErrInvalidArgument, wholesale)
	}
	return nil
}

func ValidateRating(r Rating) error {
	if r.Score < MinScore || r.Score > MaxScore {
		return fmt.Errorf("%w: got %d", ErrInvalidScore, r.Score)
	}
	if r.ReviewerName == "" {
		return fmt.Errorf("%w: reviewer name is empty", ErrInvalidArgument)
	}
	if r.Date == "" {
		return fmt.Errorf("%w: review date is empty", ErrInvalidArgument)
	}
	return nil
}

// Validate checks every catalog invariant of a snapshot restored from storage.
func (s *Snapshot) Validate() error {
	seen := make(map[string]struct{}, len(s.Items))
	for _, item := range s.Items {
		if err := ValidateItemFields(item.Name, item.Category, item.ServingSize, item.NumCalories, item.RetailPrice, item.WholesalePrice); err != nil {
			return err
		}
		if _, dup := seen[item.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateItem, item.Name)
		}
		seen[item.Name] = struct{}{}
		if item.OrderCount < 0 {
			return fmt.Errorf("%w: order count for %q is negative", ErrInvalidArgument, item.Name)
		}
		for _, r := range item.Ratings {
			if err := ValidateRating(r); err != nil {
				return fmt.Errorf("item %q: %w", item.Name, err)
			}
		}
	}
	return nil
}
