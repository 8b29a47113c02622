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

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	bookings  repository.BookingRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, bookings repository.BookingRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, bookings: bookings}
}

// Create valida el payload y persiste un nuevo cliente con ID asignado por el servidor.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if errs := validation.Struct(in); errs != nil {
		return nil, errs
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Number:       in.Number,
		EmailAddress: in.EmailAddress,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return mapCustomer(customer), nil
}

// GetByID devuelve el cliente o nil si no existe. Un ID malformado
// equivale a un cliente inexistente.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	if !isUUID(id) {
		return nil, nil
	}
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return mapCustomer(customer), nil
}

// List devuelve todos los clientes (sin paginar).
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, mapCustomer(c))
	}
	return out, nil
}

// Update reemplaza todos los campos mutables del cliente.
// Devuelve domain.ErrNotFound si el ID no existe.
func (uc *CustomerUseCase) Update(id string, in dto.CustomerRequest) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	existing, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.Number = in.Number
	existing.EmailAddress = in.EmailAddress
	existing.UpdatedAt = time.Now()
	return uc.customers.Update(existing)
}

// Delete elimina el cliente. Borrar un ID inexistente no es error (delete
// idempotente); un cliente con reservas asociadas devuelve domain.ErrConflict.
func (uc *CustomerUseCase) Delete(id string) error {
	if !isUUID(id) {
		return nil
	}
	n, err := uc.bookings.CountByCustomer(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.customers.Delete(id)
}

func mapCustomer(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Number:       c.Number,
		EmailAddress: c.EmailAddress,
	}
}
