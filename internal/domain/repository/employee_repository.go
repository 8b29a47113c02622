package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}
