package service

import (
	"fmt"
	"strings"

	"restaurant-manager/menu-svc/internal/domain"
)

type SortField int

const (
	SortByName SortField = iota + 1
	SortByProfit
	SortByRating
)

type SortAlgorithm int

const (
	SelectionSort SortAlgorithm = iota + 1
	InsertionSort
)

// comparator returns a negative number when a ranks ahead of b.
type comparator func(a, b *domain.MenuItem) int

type sortKey struct {
	compare comparator
	// value renders the ranked quantity; nil when the name is the quantity.
	value func(item *domain.MenuItem) string
}

var sortKeys = map[SortField]sortKey{
	SortByName: {
		compare: func(a, b *domain.MenuItem) int {
			return strings.Compare(a.Name, b.Name)
		},
	},
	SortByProfit: {
		compare: func(a, b *domain.MenuItem) int {
			return ItemProfit(b).Cmp(ItemProfit(a))
		},
		value: func(item *domain.MenuItem) string {
			return FormatCurrency(ItemProfit(item))
		},
	},
	SortByRating: {
		compare: func(a, b *domain.MenuItem) int {
			return tallyRatings(b.Ratings).compare(tallyRatings(a.Ratings))
		},
		value: func(item *domain.MenuItem) string {
			return FormatRating(ItemAverageRating(item))
		},
	},
}

type rankedItem struct {
	item     *domain.MenuItem
	position int
}

type sorter func(entries []rankedItem, less func(a, b rankedItem) bool)

var sorters = map[SortAlgorithm]sorter{
	SelectionSort: selectionSort,
	InsertionSort: insertionSort,
}

func selectionSort(entries []rankedItem, less func(a, b rankedItem) bool) {
	for i := 0; i < len(entries)-1; i++ {
		best := i
		for j := i + 1; j < len(entries); j++ {
			if less(entries[j], entries[best]) {
				best = j
			}
		}
		entries[i], entries[best] = entries[best], entries[i]
	}
}

func insertionSort(entries []rankedItem, less func(a, b rankedItem) bool) {
	for i := 1; i < len(entries); i++ {
		current := entries[i]
		j := i - 1
		for j >= 0 && less(current, entries[j]) {
			entries[j+1] = entries[j]
			j--
		}
		entries[j+1] = current
	}
}

func ParseSortField(code int) (SortField, error) {
	field := SortField(code)
	if _, ok := sortKeys[field]; !ok {
		return 0, fmt.Errorf("%w: sort field must be 1 (name), 2 (profit) or 3 (rating), got %d", domain.ErrInvalidArgument, code)
	}
	return field, nil
}

func ParseSortAlgorithm(code int) (SortAlgorithm, error) {
	alg := SortAlgorithm(code)
	if _, ok := sorters[alg]; !ok {
		return 0, fmt.Errorf("%w: sort algorithm must be 1 (selection) or 2 (insertion), got %d", domain.ErrInvalidArgument, code)
	}
	return alg, nil
}

// Rank returns a sorted copy of items. Ties on the key keep the order the
// items had in the input, so every algorithm yields the same ranking.
func Rank(items []*domain.MenuItem, field SortField, alg SortAlgorithm) ([]*domain.MenuItem, error) {
	key, ok := sortKeys[field]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sort field %d", domain.ErrInvalidArgument, int(field))
	}
	sortEntries, ok := sorters[alg]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sort algorithm %d", domain.ErrInvalidArgument, int(alg))
	}

	entries := make([]rankedItem, len(items))
	for i, item := range items {
		entries[i] = rankedItem{item: item, position: i}
	}

	sortEntries(entries, func(a, b rankedItem) bool {
		if c := key.compare(a.item, b.item); c != 0 {
			return c < 0
		}
		return a.position < b.position
	})

	ranked := make([]*domain.MenuItem, len(entries))
	for i, e := range entries {
		ranked[i] = e.item
	}
	return ranked, nil
}

func FormatRanking(ranked []*domain.MenuItem, field SortField) string {
	key := sortKeys[field]
	var b strings.Builder
	for i, item := range ranked {
		fmt.Fprintf(&b, "Rank %d: %s", i+1, item.Name)
		if key.value != nil {
			b.WriteString(" - ")
			b.WriteString(key.value(item))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
