package application

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tillbook/tillbook/internal/domain"
)

// CatalogService holds the manager's catalog operations. Every successful mutation is
// persisted before returning.
type CatalogService struct {
	inventory *domain.Inventory
}

func NewCatalogService(inventory *domain.Inventory) *CatalogService {
	return &CatalogService{inventory: inventory}
}

func (s *CatalogService) Items() []*domain.Item { return s.inventory.Items() }

func (s *CatalogService) Find(name string) (*domain.Item, bool) {
	return s.inventory.FindByName(name)
}

func (s *CatalogService) AddItem(item *domain.Item) error {
	if err := s.inventory.AddItem(item); err != nil {
		return err
	}
	return s.inventory.Save()
}

// AddCategory introduces category through a zero-valued placeholder item.
func (s *CatalogService) AddCategory(category string) (*domain.Item, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is empty", domain.ErrInvalidArgument)
	}
	item := domain.PlaceholderItem(category)
	if err := s.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetStock sets the stock level outright.
func (s *CatalogService) SetStock(name string, level int) (bool, error) {
	ok, err := s.inventory.UpdateStockLevel(name, level)
	if err != nil || !ok {
		return ok, err
	}
	return true, s.inventory.Save()
}

// Restock adds qty to the stock level.
func (s *CatalogService) Restock(name string, qty int) (bool, error) {
	if err := s.inventory.Policy().CheckQuantity(qty); err != nil {
		return false, err
	}
	item, ok := s.inventory.FindByName(name)
	if !ok {
		return false, nil
	}
	return s.SetStock(item.Name, item.StockLevel+qty)
}

// ModifyItem replaces the stock level and selling price.
func (s *CatalogService) ModifyItem(name string, stock int, sellingPrice decimal.Decimal) (bool, error) {
	item, ok := s.inventory.FindByName(name)
	if !ok {
		return false, nil
	}
	policy := s.inventory.Policy()
	if err := policy.CheckStockLevel(stock); err != nil {
		return false, err
	}
	if policy == domain.PolicyStrict && sellingPrice.IsNegative() {
		return false, fmt.Errorf("%w: negative selling price", domain.ErrInvalidArgument)
	}
	item.StockLevel = stock
	item.SellingPrice = sellingPrice
	return true, s.inventory.Save()
}

func (s *CatalogService) RemoveItem(name string) (bool, error) {
	if !s.inventory.RemoveItem(name) {
		return false, nil
	}
	return true, s.inventory.Save()
}

// LowStock lists items whose stock is below threshold, in catalog order.
func (s *CatalogService) LowStock(threshold int) []*domain.Item {
	var out []*domain.Item
	for _, item := range s.inventory.Items() {
		if item.StockLevel < threshold {
			out = append(out, item)
		}
	}
	return out
}
