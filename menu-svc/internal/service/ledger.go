package service

import (
	"github.com/shopspring/decimal"

	"restaurant-manager/menu-svc/internal/domain"
)

// Orders

func ItemProfit(item *domain.MenuItem) decimal.Decimal {
	spread := item.RetailPrice.Sub(item.WholesalePrice)
	return spread.Mul(decimal.NewFromInt(int64(item.OrderCount)))
}

func TotalProfit(items []*domain.MenuItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ItemProfit(item))
	}
	return total
}

// Ratings

type ratingTally struct {
	sum   int64
	count int64
}

func tallyRatings(ratings []domain.Rating) ratingTally {
	var t ratingTally
	for _, r := range ratings {
		t.sum += int64(r.Score)
		t.count++
	}
	return t
}

func (t ratingTally) average() float64 {
	if t.count == 0 {
		return 0
	}
	return float64(t.sum) / float64(t.count)
}

// compare orders two averages exactly by cross-multiplying. An empty tally
// counts as an average of 0.
func (t ratingTally) compare(other ratingTally) int {
	if t.count == 0 {
		t = ratingTally{sum: 0, count: 1}
	}
	if other.count == 0 {
		other = ratingTally{sum: 0, count: 1}
	}
	lhs, rhs := t.sum*other.count, other.sum*t.count
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

func NewRating(reviewerName, date string, score int) (domain.Rating, error) {
	r := domain.Rating{ReviewerName: reviewerName, Date: date, Score: score}
	if err := domain.ValidateRating(r); err != nil {
		return domain.Rating{}, err
	}
	return r, nil
}

// ItemAverageRating is 0 for an item nobody has rated.
func ItemAverageRating(item *domain.MenuItem) float64 {
	return tallyRatings(item.Ratings).average()
}

// CatalogAverageRating averages every rating of every item, not the per-item
// averages. It is 0 when the catalog holds no ratings at all.
func CatalogAverageRating(items []*domain.MenuItem) float64 {
	var total ratingTally
	for _, item := range items {
		t := tallyRatings(item.Ratings)
		total.sum += t.sum
		total.count += t.count
	}
	return total.average()
}

func itemStats(item *domain.MenuItem) domain.ItemStats {
	return domain.ItemStats{
		Name:          item.Name,
		Active:        item.Active,
		OrderCount:    item.OrderCount,
		RatingCount:   len(item.Ratings),
		AverageRating: ItemAverageRating(item),
		Profit:        ItemProfit(item),
	}
}
