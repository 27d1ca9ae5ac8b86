package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Role is the access level of a user.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleManager       Role = "Manager"
	RoleCashier       Role = "Cashier"
)

var ValidRoles = []Role{RoleAdministrator, RoleManager, RoleCashier}

// ParseRole maps s onto a known role, ignoring case.
func ParseRole(s string) (Role, bool) {
	for _, r := range ValidRoles {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, true
		}
	}
	return "", false
}

type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

type Supplier struct {
	Name        string   `yaml:"name"         json:"name"`
	ContactInfo string   `yaml:"contact_info" json:"contact_info"`
	Products    []string `yaml:"products"     json:"products"`
}

// AddProduct records product unless the supplier already lists it.
func (s *Supplier) AddProduct(product string) bool {
	product = strings.TrimSpace(product)
	if product == "" {
		return false
	}
	for _, p := range s.Products {
		if strings.EqualFold(p, product) {
			return false
		}
	}
	s.Products = append(s.Products, product)
	return true
}

type Employee struct {
	Name        string          `yaml:"name"          json:"name"`
	Username    string          `yaml:"username"      json:"username"`
	DateOfBirth string          `yaml:"date_of_birth" json:"date_of_birth"`
	Phone       string          `yaml:"phone"         json:"phone"`
	Email       string          `yaml:"email"         json:"email"`
	Salary      decimal.Decimal `yaml:"salary"        json:"salary"`
	AccessLevel Role            `yaml:"access_level"  json:"access_level"`
}

func TotalSalaries(employees []Employee) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.Salary)
	}
	return total
}
