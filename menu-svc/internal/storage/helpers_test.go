package storage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-manager/menu-svc/internal/domain"
)

func sampleSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Name: "Diner",
		Items: []domain.MenuItem{
			{
				Name: "Burger", Category: domain.CategoryMain, ServingSize: 1, NumCalories: 650,
				RetailPrice: decimal.RequireFromString("5.50"), WholesalePrice: decimal.RequireFromString("2.00"),
				Active: true, OrderCount: 3,
				Ratings: []domain.Rating{
					{ReviewerName: "Ann", Date: "01/02/2015", Score: 5},
					{ReviewerName: "Bob, Jr.", Date: "01/03/2015", Score: 4},
				},
			},
			{
				Name: "Lemonade \"fresh\"", Category: domain.CategoryDrink, ServingSize: 2, NumCalories: 120,
				RetailPrice: decimal.RequireFromString("1.995"), WholesalePrice: decimal.RequireFromString("0.25"),
			},
		},
	}
}

// assertSameSnapshot compares prices by value since decimals may differ in
// exponent after a round trip.
func assertSameSnapshot(t *testing.T, want, got *domain.Snapshot) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.Name, got.Name)
	require.Len(t, got.Items, len(want.Items))
	for i := range want.Items {
		w, g := want.Items[i], got.Items[i]
		assert.True(t, w.RetailPrice.Equal(g.RetailPrice), "retail price of %s: %s != %s", w.Name, w.RetailPrice, g.RetailPrice)
		assert.True(t, w.WholesalePrice.Equal(g.WholesalePrice), "wholesale price of %s: %s != %s", w.Name, w.WholesalePrice, g.WholesalePrice)
		w.RetailPrice, g.RetailPrice = decimal.Zero, decimal.Zero
		w.WholesalePrice, g.WholesalePrice = decimal.Zero, decimal.Zero
		if len(w.Ratings) == 0 && len(g.Ratings) == 0 {
			w.Ratings, g.Ratings = nil, nil
		}
		assert.Equal(t, w, g)
	}
}
