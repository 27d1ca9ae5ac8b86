package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tillbook/tillbook/internal/domain"
)

func TestParseRole(t *testing.T) {
	r, ok := domain.ParseRole(" cashier ")
	assert.True(t, ok)
	assert.Equal(t, domain.RoleCashier, r)

	_, ok = domain.ParseRole("janitor")
	assert.False(t, ok)
}

func TestSupplier_AddProductDeduplicates(t *testing.T) {
	s := domain.Supplier{Name: "Alpha Wholesale"}
	assert.True(t, s.AddProduct("Laptops"))
	assert.False(t, s.AddProduct("laptops"))
	assert.False(t, s.AddProduct("  "))
	assert.Equal(t, []string{"Laptops"}, s.Products)
}

func TestTotalSalaries(t *testing.T) {
	total := domain.TotalSalaries([]domain.Employee{
		{Username: "a", Salary: price("2500.50")},
		{Username: "b", Salary: price("3000")},
	})
	assert.Equal(t, "5500.50", total.StringFixed(2))
}
