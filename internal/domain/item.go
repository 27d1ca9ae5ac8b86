package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item is a sellable catalog entry. Identity is the name, compared case-insensitively,
// but nothing enforces uniqueness.
type Item struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockLevel    int             `json:"stock_level"`
}

func NewItem(name, category string, purchasePrice, sellingPrice decimal.Decimal, stock int) *Item {
	return &Item{
		Name:          name,
		Category:      category,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		StockLevel:    stock,
	}
}

// Matches reports whether the item answers to name. An empty name never matches.
func (i *Item) Matches(name string) bool {
	return name != "" && strings.EqualFold(i.Name, name)
}

// StockValue is the stock priced at the selling price.
func (i *Item) StockValue() decimal.Decimal {
	return i.SellingPrice.Mul(decimal.NewFromInt(int64(i.StockLevel)))
}

// StockCost is the stock priced at the purchase price.
func (i *Item) StockCost() decimal.Decimal {
	return i.PurchasePrice.Mul(decimal.NewFromInt(int64(i.StockLevel)))
}

// Margin is the profit realised if the whole stock sold at the selling price.
func (i *Item) Margin() decimal.Decimal {
	return i.SellingPrice.Sub(i.PurchasePrice).Mul(decimal.NewFromInt(int64(i.StockLevel)))
}

// PlaceholderItem is the zero-valued entry created when a new category is introduced.
func PlaceholderItem(category string) *Item {
	return NewItem("New "+category+" Item", category, decimal.Zero, decimal.Zero, 0)
}
