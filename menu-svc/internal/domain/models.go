package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryMain    Category = "MAIN"
	CategoryDessert Category = "DESSERT"
	CategorySide    Category = "SIDE"
	CategoryDrink   Category = "DRINK"
)

var Categories = []Category{CategoryMain, CategoryDessert, CategorySide, CategoryDrink}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts any letter case, e.g. "dessert".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, s)
	}
	return c, nil
}

const (
	MinScore = 1
	MaxScore = 5
)

type Rating struct {
	ReviewerName string `json:"reviewer_name"`
	Date         string `json:"date"`
	Score        int    `json:"score"`
}

type MenuItem struct {
	Name           string          `json:"name"`
	Category       Category        `json:"category"`
	ServingSize    int             `json:"serving_size"`
	NumCalories    int             `json:"num_calories"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	Active         bool            `json:"active"`
	OrderCount     int             `json:"order_count"`
	Ratings        []Rating        `json:"ratings"`
}

// Clone returns a copy that shares no rating storage with m.
func (m MenuItem) Clone() MenuItem {
	if m.Ratings != nil {
		m.Ratings = append([]Rating(nil), m.Ratings...)
	}
	return m
}

// Snapshot is the full persisted state of one restaurant.
type Snapshot struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// ItemStats is the derived view of one item pushed to the stats cache.
type ItemStats struct {
	Name          string          `json:"name"`
	Active        bool            `json:"active"`
	OrderCount    int             `json:"order_count"`
	RatingCount   int             `json:"rating_count"`
	AverageRating float64         `json:"avg_rating"`
	Profit        decimal.Decimal `json:"profit"`
}

const (
	EventItemAdded        = "item_added"
	EventItemRemoved      = "item_removed"
	EventItemActivated    = "item_activated"
	EventItemDiscontinued = "item_discontinued"
	EventItemOrdered      = "item_ordered"
	EventItemRated        = "item_rated"
	EventPriceUpdated     = "price_updated"
)

type MenuEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Restaurant string    `json:"restaurant"`
	Item       string    `json:"item,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	Percent    int       `json:"percent,omitempty"`
	Wholesale  bool      `json:"wholesale,omitempty"`
	Score      int       `json:"score,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type Format int

const (
	FormatText Format = iota
	FormatObject
)

func FormatFromObjectFlag(isObject bool) Format {
	if isObject {
		return FormatObject
	}
	return FormatText
}

func (f Format) String() string {
	switch f {
	case FormatText:
		return "Text"
	case FormatObject:
		return "Object"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}
