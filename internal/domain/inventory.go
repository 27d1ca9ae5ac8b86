package domain

import "fmt"

// Inventory owns the ordered catalog. Insertion order is preserved; it decides which
// item a name lookup returns and the order records are written in.
//
// Mutations only touch memory. Callers persist with Save.
type Inventory struct {
	items   []*Item
	store   InventoryStore
	policy  ValidationPolicy
	loadErr error
}

func NewInventory(store InventoryStore, policy ValidationPolicy) *Inventory {
	if policy == "" {
		policy = PolicyLegacyPermissive
	}
	return &Inventory{store: store, policy: policy}
}

// AddItem appends item without checking for an existing entry of the same name.
func (inv *Inventory) AddItem(item *Item) error {
	if err := inv.policy.CheckItem(item); err != nil {
		return err
	}
	inv.items = append(inv.items, item)
	return nil
}

// FindByName returns the first item whose name matches, ignoring case.
func (inv *Inventory) FindByName(name string) (*Item, bool) {
	i := inv.indexOf(name)
	if i < 0 {
		return nil, false
	}
	return inv.items[i], true
}

// UpdateStockLevel sets the stock of the first matching item. It reports false when no
// item matches. Negative levels are applied unless the policy is strict.
func (inv *Inventory) UpdateStockLevel(name string, level int) (bool, error) {
	item, ok := inv.FindByName(name)
	if !ok {
		return false, nil
	}
	if err := inv.policy.CheckStockLevel(level); err != nil {
		return false, err
	}
	item.StockLevel = level
	return true, nil
}

// RemoveItem drops the first matching item.
func (inv *Inventory) RemoveItem(name string) bool {
	i := inv.indexOf(name)
	if i < 0 {
		return false
	}
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return true
}

// Items returns the catalog in insertion order. The slice is a copy; the items are shared.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) Len() int { return len(inv.items) }

func (inv *Inventory) Policy() ValidationPolicy { return inv.policy }

// Loaded reports whether memory can be trusted to replace the store.
func (inv *Inventory) Loaded() bool { return inv.loadErr == nil }

// Save rewrites the whole backing store from memory. After a failed Load the store
// still holds records memory does not, so Save refuses with ErrCatalogNotLoaded until
// a Load succeeds.
func (inv *Inventory) Save() error {
	if inv.loadErr != nil {
		return fmt.Errorf("%w: not overwriting the store: %w", ErrCatalogNotLoaded, inv.loadErr)
	}
	records := make([]Item, len(inv.items))
	for i, item := range inv.items {
		records[i] = *item
	}
	if err := inv.store.Save(records); err != nil {
		return fmt.Errorf("%w: saving inventory: %w", ErrPersistence, err)
	}
	return nil
}

// Load replaces the catalog with the stored records. The catalog is cleared first, so
// a failed read leaves it empty and blocks Save.
func (inv *Inventory) Load() error {
	inv.items = nil
	records, err := inv.store.Load()
	if err != nil {
		inv.loadErr = err
		return fmt.Errorf("%w: loading inventory: %w", ErrPersistence, err)
	}
	inv.loadErr = nil
	inv.items = make([]*Item, len(records))
	for i := range records {
		item := records[i]
		inv.items[i] = &item
	}
	return nil
}

func (inv *Inventory) indexOf(name string) int {
	for i, item := range inv.items {
		if item.Matches(name) {
			return i
		}
	}
	return -1
}
