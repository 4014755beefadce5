package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"restaurant-manager/menu-svc/internal/domain"
)

const (
	recordRestaurant = "restaurant"
	recordItem       = "item"
	recordRating     = "rating"
)

// TextStore reads and writes the human-readable form: one CSV record per
// line, the restaurant header first, each item followed by its ratings.
type TextStore struct{}

func NewTextStore() *TextStore {
	return &TextStore{}
}

func (s *TextStore) Save(path string, snap *domain.Snapshot) error {
	return writeFile(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{recordRestaurant, snap.Name}); err != nil {
			return err
		}
		for _, item := range snap.Items {
			if err := cw.Write(itemRecord(item)); err != nil {
				return err
			}
			for _, r := range item.Ratings {
				if err := cw.Write([]string{recordRating, r.ReviewerName, r.Date, strconv.Itoa(r.Score)}); err != nil {
					return err
				}
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

func itemRecord(item domain.MenuItem) []string {
	return []string{
		recordItem,
		item.Name,
		string(item.Category),
		strconv.Itoa(item.ServingSize),
		strconv.Itoa(item.NumCalories),
		item.RetailPrice.String(),
		item.WholesalePrice.String(),
		strconv.FormatBool(item.Active),
		strconv.Itoa(item.OrderCount),
		strconv.Itoa(len(item.Ratings)),
	}
}

func (s *TextStore) Load(path string) (*domain.Snapshot, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	snap, err := decodeText(data)
	if err != nil {
		return nil, formatError(path, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, formatError(path, err)
	}
	return snap, nil
}

func decodeText(data []byte) (*domain.Snapshot, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing restaurant header")
	}
	if err != nil {
		return nil, err
	}
	if len(header) != 2 || header[0] != recordRestaurant {
		return nil, fmt.Errorf("line 1: expected %q header", recordRestaurant)
	}
	snap := &domain.Snapshot{Name: header[1]}

	pending := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		switch record[0] {
		case recordItem:
			if pending > 0 {
				return nil, fmt.Errorf("line %d: %d rating(s) missing before next item", line, pending)
			}
			item, ratings, err := parseItem(record)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			snap.Items = append(snap.Items, item)
			pending = ratings
		case recordRating:
			if pending == 0 {
				return nil, fmt.Errorf("line %d: unexpected rating record", line)
			}
			r, err := parseRating(record)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			last := &snap.Items[len(snap.Items)-1]
			last.Ratings = append(last.Ratings, r)
			pending--
		default:
			return nil, fmt.Errorf("line %d: unknown record type %q", line, record[0])
		}
	}
	if pending > 0 {
		return nil, fmt.Errorf("truncated: %d rating(s) missing at end of file", pending)
	}
	return snap, nil
}

func parseItem(record []string) (domain.MenuItem, int, error) {
	if len(record) != 10 {
		return domain.MenuItem{}, 0, fmt.Errorf("item record has %d fields, want 10", len(record))
	}
	var (
		item = domain.MenuItem{Name: record[1], Category: domain.Category(record[2])}
		err  error
	)
	ints := []struct {
		field string
		dst   *int
		raw   string
	}{
		{"serving size", &item.ServingSize, record[3]},
		{"calories", &item.NumCalories, record[4]},
		{"order count", &item.OrderCount, record[8]},
	}
	for _, f := range ints {
		if *f.dst, err = strconv.Atoi(f.raw); err != nil {
			return domain.MenuItem{}, 0, fmt.Errorf("%s: %w", f.field, err)
		}
	}
	if item.RetailPrice, err = decimal.NewFromString(record[5]); err != nil {
		return domain.MenuItem{}, 0, fmt.Errorf("retail price: %w", err)
	}
	if item.WholesalePrice, err = decimal.NewFromString(record[6]); err != nil {
		return domain.MenuItem{}, 0, fmt.Errorf("wholesale price: %w", err)
	}
	if item.Active, err = strconv.ParseBool(record[7]); err != nil {
		return domain.MenuItem{}, 0, fmt.Errorf("active flag: %w", err)
	}
	ratings, err := strconv.Atoi(record[9])
	if err != nil || ratings < 0 {
		return domain.MenuItem{}, 0, fmt.Errorf("rating count %q is invalid", record[9])
	}
	return item, ratings, nil
}

func parseRating(record []string) (domain.Rating, error) {
	if len(record) != 4 {
		return domain.Rating{}, fmt.Errorf("rating record has %d fields, want 4", len(record))
	}
	score, err := strconv.Atoi(record[3])
	if err != nil {
		return domain.Rating{}, fmt.Errorf("score: %w", err)
	}
	return domain.Rating{ReviewerName: record[1], Date: record[2], Score: score}, nil
}
