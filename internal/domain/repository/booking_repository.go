package repository

import (
	"time"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// BookingRepository define el puerto de persistencia para Booking.
// Las lecturas devuelven BookingDetail con el cliente y el empleado ya resueltos.
type BookingRepository interface {
	Create(booking *entity.Booking) error
	GetByID(id string) (*entity.BookingDetail, error)
	List(limit, offset int) ([]*entity.BookingDetail, error)
	ListByDate(date time.Time) ([]*entity.BookingDetail, error)
	Count() (int, error)
	CountByCustomer(customerID string) (int, error)
	CountByEmployee(employeeID string) (int, error)
	Update(booking *entity.Booking) error
	Delete(id string) error
}
