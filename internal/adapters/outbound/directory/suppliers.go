package directory

import (
	"fmt"
	"strings"

	"github.com/tillbook/tillbook/internal/domain"
)

// SupplierFile keeps suppliers in a YAML list. A missing file is seeded with sample
// suppliers on first read.
type SupplierFile struct {
	path string
}

func NewSupplierFile(path string) *SupplierFile { return &SupplierFile{path: path} }

var _ domain.SupplierDirectory = (*SupplierFile)(nil)

func sampleSuppliers() []domain.Supplier {
	return []domain.Supplier{
		{Name: "Alpha Wholesale", ContactInfo: "alpha@wholesale.com", Products: []string{"Laptops", "Monitors"}},
		{Name: "Beta Foods", ContactInfo: "beta@foods.com", Products: []string{"Snacks", "Beverages"}},
		{Name: "Gamma Tech", ContactInfo: "gamma@tech.com", Products: []string{"Keyboards", "Mice"}},
	}
}

func (s *SupplierFile) List() ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	found, err := loadYAML(s.path, &suppliers)
	if err != nil {
		return nil, err
	}
	if !found {
		suppliers = sampleSuppliers()
		if err := saveYAML(s.path, suppliers); err != nil {
			return nil, err
		}
	}
	return suppliers, nil
}

// Add stores supplier. An existing supplier of the same name gains the new products
// and contact details instead of being duplicated.
func (s *SupplierFile) Add(supplier domain.Supplier) error {
	if strings.TrimSpace(supplier.Name) == "" {
		return fmt.Errorf("%w: supplier name is empty", domain.ErrInvalidArgument)
	}
	suppliers, err := s.List()
	if err != nil {
		return err
	}

	merged := false
	for i := range suppliers {
		if strings.EqualFold(suppliers[i].Name, supplier.Name) {
			if supplier.ContactInfo != "" {
				suppliers[i].ContactInfo = supplier.ContactInfo
			}
			for _, p := range supplier.Products {
				suppliers[i].AddProduct(p)
			}
			merged = true
			break
		}
	}
	if !merged {
		fresh := domain.Supplier{Name: supplier.Name, ContactInfo: supplier.ContactInfo}
		for _, p := range supplier.Products {
			fresh.AddProduct(p)
		}
		suppliers = append(suppliers, fresh)
	}
	return saveYAML(s.path, suppliers)
}
