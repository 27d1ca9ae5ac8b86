package directory

import (
	"fmt"
	"strings"

	"github.com/tillbook/tillbook/internal/domain"
)

// EmployeeFile keeps employee records in a YAML list.
type EmployeeFile struct {
	path string
}

func NewEmployeeFile(path string) *EmployeeFile { return &EmployeeFile{path: path} }

var _ domain.EmployeeDirectory = (*EmployeeFile)(nil)

func (e *EmployeeFile) List() ([]domain.Employee, error) {
	var employees []domain.Employee
	if _, err := loadYAML(e.path, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (e *EmployeeFile) Add(employee domain.Employee) error {
	if strings.TrimSpace(employee.Username) == "" {
		return fmt.Errorf("%w: employee username is empty", domain.ErrInvalidArgument)
	}
	employees, err := e.List()
	if err != nil {
		return err
	}
	for _, existing := range employees {
		if strings.EqualFold(existing.Username, employee.Username) {
			return fmt.Errorf("%w: employee %q already exists", domain.ErrInvalidArgument, employee.Username)
		}
	}
	return saveYAML(e.path, append(employees, employee))
}

func (e *EmployeeFile) FindByUsername(username string) (domain.Employee, bool, error) {
	employees, err := e.List()
	if err != nil {
		return domain.Employee{}, false, err
	}
	for _, emp := range employees {
		if strings.EqualFold(emp.Username, username) {
			return emp, true, nil
		}
	}
	return domain.Employee{}, false, nil
}
