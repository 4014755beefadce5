package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"restaurant-manager/menu-svc/internal/domain"
)

// Restaurant owns one menu catalog. Every operation validates its input
// before touching any item, so a failed call leaves the catalog unchanged.
type Restaurant struct {
	name  string
	items []*domain.MenuItem
}

func NewRestaurant(name string) *Restaurant {
	return &Restaurant{name: name}
}

// RestoreRestaurant builds a catalog from persisted state. The snapshot is
// validated in full first; its own name is ignored in favour of name.
func RestoreRestaurant(name string, snap *domain.Snapshot) (*Restaurant, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	r := NewRestaurant(name)
	for _, item := range snap.Items {
		restored := item.Clone()
		r.items = append(r.items, &restored)
	}
	return r, nil
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) find(name string) *domain.MenuItem {
	for _, item := range r.items {
		if item.Name == name {
			return item
		}
	}
	return nil
}

func (r *Restaurant) Add(name string, category domain.Category, servingSize, numCalories int, retail, wholesale decimal.Decimal) error {
	if err := domain.ValidateItemFields(name, category, servingSize, numCalories, retail, wholesale); err != nil {
		return err
	}
	if r.find(name) != nil {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateItem, name)
	}
	r.items = append(r.items, &domain.MenuItem{
		Name:           name,
		Category:       category,
		ServingSize:    servingSize,
		NumCalories:    numCalories,
		RetailPrice:    retail,
		WholesalePrice: wholesale,
		Active:         true,
	})
	return nil
}

// Remove reports false when no item has that name.
func (r *Restaurant) Remove(name string) bool {
	for i, item := range r.items {
		if item.Name == name {
			r.items = slices.Delete(r.items, i, i+1)
			return true
		}
	}
	return false
}

func (r *Restaurant) setActive(name string, active bool) bool {
	item := r.find(name)
	if item == nil {
		return false
	}
	item.Active = active
	return true
}

func (r *Restaurant) Activate(name string) bool {
	return r.setActive(name, true)
}

func (r *Restaurant) Discontinue(name string) bool {
	return r.setActive(name, false)
}

func (r *Restaurant) ActivateAll() {
	for _, item := range r.items {
		item.Active = true
	}
}

func (r *Restaurant) DiscontinueAll() {
	for _, item := range r.items {
		item.Active = false
	}
}

// Order adds quantity to the item's order count. Discontinued items can
// still be ordered.
func (r *Restaurant) Order(name string, quantity int) (bool, error) {
	if quantity < 0 {
		return false, fmt.Errorf("%w: order quantity must not be negative, got %d", domain.ErrInvalidArgument, quantity)
	}
	item := r.find(name)
	if item == nil {
		return false, nil
	}
	item.OrderCount += quantity
	return true, nil
}

func (r *Restaurant) AddRating(itemName, reviewerName, date string, score int) error {
	item := r.find(itemName)
	if item == nil {
		return fmt.Errorf("%w: %q", domain.ErrNotFound, itemName)
	}
	rating, err := NewRating(reviewerName, date, score)
	if err != nil {
		return err
	}
	item.Ratings = append(item.Ratings, rating)
	return nil
}

func adjustPrice(item *domain.MenuItem, useWholesale bool, percent int) {
	if useWholesale {
		item.WholesalePrice = ApplyPercent(item.WholesalePrice, percent)
		return
	}
	item.RetailPrice = ApplyPercent(item.RetailPrice, percent)
}

// UpdatePrice changes one item's retail or wholesale price by percent.
func (r *Restaurant) UpdatePrice(useWholesale bool, name string, percent int) (bool, error) {
	if err := ValidatePercent(percent); err != nil {
		return false, err
	}
	item := r.find(name)
	if item == nil {
		return false, nil
	}
	adjustPrice(item, useWholesale, percent)
	return true, nil
}

func (r *Restaurant) UpdateAllPrices(useWholesale bool, percent int) (bool, error) {
	if err := ValidatePercent(percent); err != nil {
		return false, err
	}
	for _, item := range r.items {
		adjustPrice(item, useWholesale, percent)
	}
	return true, nil
}

func (r *Restaurant) ItemNames() []string {
	names := make([]string, 0, len(r.items))
	for _, item := range r.items {
		names = append(names, item.Name)
	}
	return names
}

func (r *Restaurant) Item(name string) (domain.MenuItem, bool) {
	item := r.find(name)
	if item == nil {
		return domain.MenuItem{}, false
	}
	return item.Clone(), true
}

func (r *Restaurant) Items() []domain.MenuItem {
	items := make([]domain.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item.Clone())
	}
	return items
}

func (r *Restaurant) ItemStats(name string) (domain.ItemStats, bool) {
	item := r.find(name)
	if item == nil {
		return domain.ItemStats{}, false
	}
	return itemStats(item), true
}

func (r *Restaurant) TotalProfit() decimal.Decimal {
	return TotalProfit(r.items)
}

func (r *Restaurant) AverageItemRating() float64 {
	return CatalogAverageRating(r.items)
}

// Sort renders the catalog ranked by fieldCode (1 name, 2 profit, 3 rating)
// using algorithmCode (1 selection, 2 insertion). Storage order is untouched.
func (r *Restaurant) Sort(fieldCode, algorithmCode int) (string, error) {
	field, err := ParseSortField(fieldCode)
	if err != nil {
		return "", err
	}
	alg, err := ParseSortAlgorithm(algorithmCode)
	if err != nil {
		return "", err
	}
	ranked, err := Rank(r.items, field, alg)
	if err != nil {
		return "", err
	}
	return FormatRanking(ranked, field), nil
}

func (r *Restaurant) Snapshot() *domain.Snapshot {
	return &domain.Snapshot{Name: r.name, Items: r.Items()}
}

func (r *Restaurant) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurant %s: %d menu item(s)", r.name, len(r.items))
	for _, item := range r.items {
		status := "active"
		if !item.Active {
			status = "discontinued"
		}
		fmt.Fprintf(&b, "\n%s (%s, %s) serving %d, %d cal, retail %s, wholesale %s, %d order(s), %d rating(s)",
			item.Name, item.Category, status, item.ServingSize, item.NumCalories,
			FormatCurrency(item.RetailPrice), FormatCurrency(item.WholesalePrice),
			item.OrderCount, len(item.Ratings))
	}
	return b.String()
}
