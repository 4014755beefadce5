package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"restaurant-manager/menu-svc/internal/domain"
)

type DefaultMenuCardGenerator struct {
	Size int
}

func (g DefaultMenuCardGenerator) Generate(item domain.MenuItem) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(MenuCardText(item), qrcode.Medium, size)
}

// MenuCardText is the payload encoded on a printed menu card.
func MenuCardText(item domain.MenuItem) string {
	return fmt.Sprintf("%s | %s | %s | rating %s",
		item.Name, item.Category, FormatCurrency(item.RetailPrice), FormatRating(ItemAverageRating(&item)))
}
