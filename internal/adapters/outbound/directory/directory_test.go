package directory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillbook/tillbook/internal/adapters/outbound/directory"
	"github.com/tillbook/tillbook/internal/domain"
)

func TestUserFile_ListSkipsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte("admin,secret,Administrator\nbroken,line\nc1,pw,cashier\nx,y,Janitor\n"), 0644))

	users, err := directory.NewUserFile(path).List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, domain.RoleCashier, users[1].Role)
}

func TestUserFile_FindIgnoresCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alice,pw,Manager\n"), 0644))
	dir := directory.NewUserFile(path)

	user, ok, err := dir.Find("alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.RoleManager, user.Role)

	_, ok, err = dir.Find("bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserFile_MissingFile(t *testing.T) {
	users, err := directory.NewUserFile(filepath.Join(t.TempDir(), "users.txt")).List()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSupplierFile_SeedsOnFirstRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppliers.yaml")
	suppliers, err := directory.NewSupplierFile(path).List()
	require.NoError(t, err)
	require.Len(t, suppliers, 3)
	assert.Equal(t, "Alpha Wholesale", suppliers[0].Name)
	assert.FileExists(t, path)
}

func TestSupplierFile_AddMergesProducts(t *testing.T) {
	dir := directory.NewSupplierFile(filepath.Join(t.TempDir(), "suppliers.yaml"))

	require.NoError(t, dir.Add(domain.Supplier{Name: "beta foods", Products: []string{"Snacks", "Cereal"}}))
	require.NoError(t, dir.Add(domain.Supplier{Name: "Delta Farms", ContactInfo: "delta@farms.com", Products: []string{"Eggs", "eggs"}}))

	suppliers, err := dir.List()
	require.NoError(t, err)
	require.Len(t, suppliers, 4)
	assert.Equal(t, []string{"Snacks", "Beverages", "Cereal"}, suppliers[1].Products)
	assert.Equal(t, []string{"Eggs"}, suppliers[3].Products)

	assert.ErrorIs(t, dir.Add(domain.Supplier{}), domain.ErrInvalidArgument)
}

func TestEmployeeFile_AddAndFind(t *testing.T) {
	dir := directory.NewEmployeeFile(filepath.Join(t.TempDir(), "employees.yaml"))

	require.NoError(t, dir.Add(domain.Employee{
		Name: "Carla Cash", Username: "c1", Salary: decimal.RequireFromString("2500.50"), AccessLevel: domain.RoleCashier,
	}))
	assert.ErrorIs(t, dir.Add(domain.Employee{Username: "C1"}), domain.ErrInvalidArgument)

	emp, ok, err := dir.FindByUsername("C1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Carla Cash", emp.Name)
	assert.Equal(t, "2500.5", emp.Salary.String())

	all, err := dir.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
