package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant-manager/menu-svc/internal/domain"
)

var ErrNoStore = errors.New("no store configured for format")

type Stores struct {
	Text   SnapshotStore
	Object SnapshotStore
}

func (s Stores) forFormat(format domain.Format) (SnapshotStore, error) {
	var store SnapshotStore
	switch format {
	case domain.FormatText:
		store = s.Text
	case domain.FormatObject:
		store = s.Object
	}
	if store == nil {
		return nil, fmt.Errorf("%w %s", ErrNoStore, format)
	}
	return store, nil
}

// Options wires the optional side channels. Any of them may be nil.
type Options struct {
	Mirror    SnapshotMirror
	Publisher MenuEventPublisher
	Stats     ItemStatsCache
	Cards     MenuCardGenerator

	// OnSideEffectError receives failures of the side channels. They never
	// change the result of the catalog operation that triggered them.
	OnSideEffectError func(op string, err error)
	Clock             func() time.Time
}

type RestaurantService struct {
	restaurant *Restaurant
	stores     Stores
	opts       Options
}

// OpenRestaurant starts from an empty catalog when path is empty, otherwise
// from the state stored at path in the given format.
func OpenRestaurant(ctx context.Context, name, path string, format domain.Format, stores Stores, opts Options) (*RestaurantService, error) {
	restaurant := NewRestaurant(name)
	if path != "" {
		store, err := stores.forFormat(format)
		if err != nil {
			return nil, err
		}
		snap, err := store.Load(path)
		if err != nil {
			return nil, err
		}
		if restaurant, err = RestoreRestaurant(name, snap); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrFileFormat, path, err)
		}
	}

	s := &RestaurantService{restaurant: restaurant, stores: stores, opts: opts}
	if s.opts.Clock == nil {
		s.opts.Clock = time.Now
	}
	s.refreshAll(ctx)
	return s, nil
}

func (s *RestaurantService) Name() string {
	return s.restaurant.Name()
}

func (s *RestaurantService) Status() string {
	return s.restaurant.String()
}

func (s *RestaurantService) ItemNames() []string {
	return s.restaurant.ItemNames()
}

func (s *RestaurantService) Sort(fieldCode, algorithmCode int) (string, error) {
	return s.restaurant.Sort(fieldCode, algorithmCode)
}

func (s *RestaurantService) TotalProfit() decimal.Decimal {
	return s.restaurant.TotalProfit()
}

func (s *RestaurantService) AverageItemRating() float64 {
	return s.restaurant.AverageItemRating()
}

func (s *RestaurantService) Add(ctx context.Context, name string, category domain.Category, servingSize, numCalories int, retail, wholesale decimal.Decimal) error {
	if err := s.restaurant.Add(name, category, servingSize, numCalories, retail, wholesale); err != nil {
		return err
	}
	s.emit(ctx, domain.MenuEvent{Type: domain.EventItemAdded, Item: name})
	s.refresh(ctx, name)
	return nil
}

func (s *RestaurantService) Remove(ctx context.Context, name string) bool {
	if !s.restaurant.Remove(name) {
		return false
	}
	s.emit(ctx, domain.MenuEvent{Type: domain.EventItemRemoved, Item: name})
	if s.opts.Stats != nil {
		s.report("forget item stats", s.opts.Stats.ForgetItem(ctx, s.Name(), name))
	}
	return true
}

func (s *RestaurantService) Activate(ctx context.Context, name string) bool {
	if !s.restaurant.Activate(name) {
		return false
	}
	s.emit(ctx, domain.MenuEvent{Type: domain.EventItemActivated, Item: name})
	s.refresh(ctx, name)
	return true
}

func (s *RestaurantService) ActivateAll(ctx context.Context) {
	s.restaurant.ActivateAll()
	s.emit(ctx, domain.MenuEvent{Type: domain.EventItemActivated})
	s.refreshAll(ctx)
}

func (s *RestaurantService) Discontinue(ctx context.Context, name string) bool {
	if !s.restaurant.Discontinue(name) {
		return false
	}
	s.emit(ctx, domain.MenuEvent{Type: domain.EventItemDiscontinued, Item: name})
	s.refresh(ctx, name)
	return true
}

func (s *RestaurantService) DiscontinueAll(ctx context.Context) {
	s.restaurant.DiscontinueAll()
	s.emit(ctx, domain.MenuEvent{Type: domain.EventItemDiscontinued})
	s.refreshAll(ctx)
}

func (s *RestaurantService) Order(ctx context.Context, name string, quantity int) (bool, error) {
	ok, err := s.restaurant.Order(name, quantity)
	if err != nil || !ok {
		return ok, err
	}
	s.emit(ctx, domain.MenuEvent{Type: domain.EventItemOrdered, Item: name, Quantity: quantity})
	s.refresh(ctx, name)
	return true, nil
}

func (s *RestaurantService) AddRating(ctx context.Context, itemName, reviewerName, date string, score int) error {
	if err := s.restaurant.AddRating(itemName, reviewerName, date, score); err != nil {
		return err
	}
	s.emit(ctx, domain.MenuEvent{Type: domain.EventItemRated, Item: itemName, Score: score})
	s.refresh(ctx, itemName)
	return nil
}

func (s *RestaurantService) UpdatePrice(ctx context.Context, useWholesale bool, name string, percent int) (bool, error) {
	ok, err := s.restaurant.UpdatePrice(useWholesale, name, percent)
	if err != nil || !ok {
		return ok, err
	}
	s.emit(ctx, domain.MenuEvent{Type: domain.EventPriceUpdated, Item: name, Percent: percent, Wholesale: useWholesale})
	s.refresh(ctx, name)
	return true, nil
}

func (s *RestaurantService) UpdateAllPrices(ctx context.Context, useWholesale bool, percent int) (bool, error) {
	ok, err := s.restaurant.UpdateAllPrices(useWholesale, percent)
	if err != nil || !ok {
		return ok, err
	}
	s.emit(ctx, domain.MenuEvent{Type: domain.EventPriceUpdated, Percent: percent, Wholesale: useWholesale})
	s.refreshAll(ctx)
	return true, nil
}

// Write saves the catalog to path. The Postgres mirror, when configured,
// is updated only after the file write succeeded.
func (s *RestaurantService) Write(ctx context.Context, path string, format domain.Format) error {
	store, err := s.stores.forFormat(format)
	if err != nil {
		return err
	}
	snap := s.restaurant.Snapshot()
	if err := store.Save(path, snap); err != nil {
		return err
	}
	if s.opts.Mirror != nil {
		s.report("mirror snapshot", s.opts.Mirror.SaveSnapshot(ctx, snap))
	}
	return nil
}

func (s *RestaurantService) WriteMenuCard(itemName, path string) error {
	if s.opts.Cards == nil {
		return fmt.Errorf("%w: menu cards are not enabled", domain.ErrInvalidArgument)
	}
	item, ok := s.restaurant.Item(itemName)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrNotFound, itemName)
	}
	png, err := s.opts.Cards.Generate(item)
	if err != nil {
		return fmt.Errorf("generate menu card for %q: %w", itemName, err)
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return nil
}

func (s *RestaurantService) emit(ctx context.Context, event domain.MenuEvent) {
	if s.opts.Publisher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Restaurant = s.Name()
	event.Timestamp = s.opts.Clock().UTC()
	s.report("publish "+event.Type, s.opts.Publisher.PublishMenuEvent(ctx, event))
}

func (s *RestaurantService) refresh(ctx context.Context, name string) {
	if s.opts.Stats == nil {
		return
	}
	if stats, ok := s.restaurant.ItemStats(name); ok {
		s.report("record item stats", s.opts.Stats.RecordItem(ctx, s.Name(), stats))
	}
}

func (s *RestaurantService) refreshAll(ctx context.Context) {
	if s.opts.Stats == nil {
		return
	}
	for _, name := range s.restaurant.ItemNames() {
		s.refresh(ctx, name)
	}
}

func (s *RestaurantService) report(op string, err error) {
	if err != nil && s.opts.OnSideEffectError != nil {
		s.opts.OnSideEffectError(op, err)
	}
}
