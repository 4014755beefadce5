package service

import (
	"context"

	"github.com/shopspring/decimal"

	"restaurant-manager/menu-svc/internal/domain"
)

// SnapshotStore persists a whole catalog to a file in one encoding.
type SnapshotStore interface {
	Load(path string) (*domain.Snapshot, error)
	Save(path string, snap *domain.Snapshot) error
}

type SnapshotMirror interface {
	SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error
}

type MenuEventPublisher interface {
	PublishMenuEvent(ctx context.Context, event domain.MenuEvent) error
}

type ItemStatsCache interface {
	RecordItem(ctx context.Context, restaurant string, stats domain.ItemStats) error
	ForgetItem(ctx context.Context, restaurant, item string) error
}

type MenuCardGenerator interface {
	Generate(item domain.MenuItem) ([]byte, error)
}

type RestaurantServiceInterface interface {
	Name() string
	Status() string
	ItemNames() []string
	Sort(fieldCode, algorithmCode int) (string, error)
	Add(ctx context.Context, name string, category domain.Category, servingSize, numCalories int, retail, wholesale decimal.Decimal) error
	Remove(ctx context.Context, name string) bool
	Activate(ctx context.Context, name string) bool
	ActivateAll(ctx context.Context)
	Discontinue(ctx context.Context, name string) bool
	DiscontinueAll(ctx context.Context)
	Order(ctx context.Context, name string, quantity int) (bool, error)
	AddRating(ctx context.Context, itemName, reviewerName, date string, score int) error
	UpdatePrice(ctx context.Context, useWholesale bool, name string, percent int) (bool, error)
	UpdateAllPrices(ctx context.Context, useWholesale bool, percent int) (bool, error)
	TotalProfit() decimal.Decimal
	AverageItemRating() float64
	Write(ctx context.Context, path string, format domain.Format) error
	WriteMenuCard(itemName, path string) error
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
