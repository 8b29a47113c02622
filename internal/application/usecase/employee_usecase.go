package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/validation"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso para empleados.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	bookings  repository.BookingRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employees repository.EmployeeRepository, bookings repository.BookingRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, bookings: bookings}
}

// Create valida el payload y persiste un nuevo empleado.
func (uc *EmployeeUseCase) Create(in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if errs := validation.Struct(in); errs != nil {
		return nil, errs
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.employees.Create(employee); err != nil {
		return nil, err
	}
	return mapEmployee(employee), nil
}

// GetByID devuelve el empleado o nil si no existe. Un ID malformado
// equivale a un empleado inexistente.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	if !isUUID(id) {
		return nil, nil
	}
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	return mapEmployee(employee), nil
}

// List devuelve todos los empleados (sin paginar).
func (uc *EmployeeUseCase) List() ([]*dto.EmployeeResponse, error) {
	list, err := uc.employees.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, mapEmployee(e))
	}
	return out, nil
}

// Update reemplaza todos los campos mutables del empleado.
func (uc *EmployeeUseCase) Update(id string, in dto.EmployeeRequest) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	existing, err := uc.employees.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.UpdatedAt = time.Now()
	return uc.employees.Update(existing)
}

// Delete elimina el empleado (idempotente); con reservas asociadas devuelve domain.ErrConflict.
func (uc *EmployeeUseCase) Delete(id string) error {
	if !isUUID(id) {
		return nil
	}
	n, err := uc.bookings.CountByEmployee(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.employees.Delete(id)
}

func mapEmployee(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
	}
}
