package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"restaurant-manager/menu-svc/internal/domain"
	"restaurant-manager/menu-svc/internal/service"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newDiner returns Burger (5.00/2.00) and Fries (2.50/0.50), in that order.
func newDiner(t *testing.T) *service.Restaurant {
	t.Helper()
	r := service.NewRestaurant("Diner")
	require.NoError(t, r.Add("Burger", domain.CategoryMain, 1, 650, dec("5.00"), dec("2.00")))
	require.NoError(t, r.Add("Fries", domain.CategorySide, 1, 300, dec("2.50"), dec("0.50")))
	return r
}

func mustItem(t *testing.T, r *service.Restaurant, name string) domain.MenuItem {
	t.Helper()
	item, ok := r.Item(name)
	require.True(t, ok, "item %q should exist", name)
	return item
}
