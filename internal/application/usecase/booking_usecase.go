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

// DateLayout formato de fecha de las reservas (solo calendario, sin hora).
const DateLayout = "2006-01-02"

// BookingUseCase casos de uso para reservas. Antes de crear o actualizar
// verifica que el cliente y el empleado referenciados existan.
type BookingUseCase struct {
	bookings  repository.BookingRepository
	customers repository.CustomerRepository
	employees repository.EmployeeRepository
}

// NewBookingUseCase construye el caso de uso.
func NewBookingUseCase(
	bookings repository.BookingRepository,
	customers repository.CustomerRepository,
	employees repository.EmployeeRepository,
) *BookingUseCase {
	return &BookingUseCase{bookings: bookings, customers: customers, employees: employees}
}

// List devuelve una página de reservas con metadatos de paginación.
func (uc *BookingUseCase) List(page, pageSize int) (*dto.BookingListResponse, error) {
	total, err := uc.bookings.Count()
	if err != nil {
		return nil, err
	}
	p := Paginate(total, page, pageSize)
	list, err := uc.bookings.List(p.PageSize, p.Skip)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, mapBooking(b))
	}
	return &dto.BookingListResponse{
		Bookings:   out,
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}, nil
}

// ListByDate devuelve las reservas cuyo componente de fecha coincide con date
// ("2006-01-02"); la hora del día no participa en la comparación.
func (uc *BookingUseCase) ListByDate(date string) ([]*dto.BookingResponse, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.bookings.ListByDate(d)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, mapBooking(b))
	}
	return out, nil
}

// GetByID devuelve la reserva o nil si no existe. Un ID malformado
// equivale a una reserva inexistente.
func (uc *BookingUseCase) GetByID(id string) (*dto.BookingResponse, error) {
	if !isUUID(id) {
		return nil, nil
	}
	booking, err := uc.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}
	return mapBooking(booking), nil
}

// Create valida el payload, verifica que el cliente y el empleado existan
// (cada falta con su propio error) y persiste la reserva. Nada se escribe
// si alguna referencia no resuelve.
func (uc *BookingUseCase) Create(in dto.BookingRequest) (*dto.BookingResponse, error) {
	if errs := validation.Struct(in); errs != nil {
		return nil, errs
	}
	customer, employee, err := uc.resolveRefs(in)
	if err != nil {
		return nil, err
	}
	date, _ := time.Parse(DateLayout, in.BookingDate) // ya validado por formato

	now := time.Now()
	booking := &entity.Booking{
		ID:          uuid.New().String(),
		BookingDate: date,
		BookingTime: in.BookingTime,
		Description: in.Description,
		CustomerID:  customer.ID,
		EmployeeID:  employee.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.bookings.Create(booking); err != nil {
		return nil, err
	}
	return mapBooking(&entity.BookingDetail{
		Booking:  *booking,
		Customer: *customer,
		Employee: *employee,
	}), nil
}

// Update reemplaza fecha, hora, descripción y referencias de la reserva.
// Re-verifica la existencia de las referencias (pueden haber cambiado).
func (uc *BookingUseCase) Update(id string, in dto.BookingRequest) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	existing, err := uc.bookings.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if errs := validation.Struct(in); errs != nil {
		return errs
	}
	customer, employee, err := uc.resolveRefs(in)
	if err != nil {
		return err
	}
	date, _ := time.Parse(DateLayout, in.BookingDate)

	booking := existing.Booking
	booking.BookingDate = date
	booking.BookingTime = in.BookingTime
	booking.Description = in.Description
	booking.CustomerID = customer.ID
	booking.EmployeeID = employee.ID
	booking.UpdatedAt = time.Now()
	return uc.bookings.Update(&booking)
}

// Delete elimina la reserva; borrar un ID inexistente o malformado no es error.
func (uc *BookingUseCase) Delete(id string) error {
	if !isUUID(id) {
		return nil
	}
	return uc.bookings.Delete(id)
}

// resolveRefs carga el cliente y el empleado referenciados, distinguiendo
// cuál de los dos falta.
func (uc *BookingUseCase) resolveRefs(in dto.BookingRequest) (*entity.Customer, *entity.Employee, error) {
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, nil, err
	}
	if customer == nil {
		return nil, nil, domain.ErrCustomerNotFound
	}
	employee, err := uc.employees.GetByID(in.EmployeeID)
	if err != nil {
		return nil, nil, err
	}
	if employee == nil {
		return nil, nil, domain.ErrEmployeeNotFound
	}
	return customer, employee, nil
}

func mapBooking(b *entity.BookingDetail) *dto.BookingResponse {
	return &dto.BookingResponse{
		ID:          b.ID,
		BookingDate: b.BookingDate.Format(DateLayout),
		BookingTime: b.BookingTime,
		Description: b.Description,
		Customer:    *mapCustomer(&b.Customer),
		Employee:    *mapEmployee(&b.Employee),
	}
}
