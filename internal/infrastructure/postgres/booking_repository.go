package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación de BookingRepository (usable con pool o tx).
// Las lecturas hacen JOIN con customers y employees para la instantánea.
type BookingRepo struct {
	q Querier
}

// NewBookingRepository construye el adaptador.
func NewBookingRepository(q Querier) *BookingRepo {
	return &BookingRepo{q: q}
}

const bookingDetailColumns = `
	b.id, b.booking_date, b.booking_time, b.description, b.customer_id, b.employee_id, b.created_at, b.updated_at,
	c.first_name, c.last_name, c.number, c.email_address,
	e.first_name, e.last_name`

const bookingDetailFrom = `
	FROM bookings b
	JOIN customers c ON c.id = b.customer_id
	JOIN employees e ON e.id = b.employee_id`

func scanBookingDetail(row pgx.Row) (*entity.BookingDetail, error) {
	var d entity.BookingDetail
	err := row.Scan(
		&d.ID, &d.BookingDate, &d.BookingTime, &d.Description,
		&d.CustomerID, &d.EmployeeID, &d.CreatedAt, &d.UpdatedAt,
		&d.Customer.FirstName, &d.Customer.LastName, &d.Customer.Number, &d.Customer.EmailAddress,
		&d.Employee.FirstName, &d.Employee.LastName,
	)
	if err != nil {
		return nil, err
	}
	d.Customer.ID = d.CustomerID
	d.Employee.ID = d.EmployeeID
	return &d, nil
}

// Create persiste una nueva reserva. La columna booking_date es DATE,
// el componente horario nunca se almacena.
func (r *BookingRepo) Create(booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_date, booking_time, description, customer_id, employee_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		booking.ID, booking.BookingDate, booking.BookingTime, booking.Description,
		booking.CustomerID, booking.EmployeeID, booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva con su cliente y empleado. Nil si no existe.
func (r *BookingRepo) GetByID(id string) (*entity.BookingDetail, error) {
	query := `SELECT` + bookingDetailColumns + bookingDetailFrom + ` WHERE b.id = $1`
	d, err := scanBookingDetail(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return d, nil
}

// List devuelve una página de reservas ordenadas por fecha y hora.
func (r *BookingRepo) List(limit, offset int) ([]*entity.BookingDetail, error) {
	query := `SELECT` + bookingDetailColumns + bookingDetailFrom + `
		ORDER BY b.booking_date, b.booking_time, b.id
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return collectBookingDetails(rows)
}

// ListByDate devuelve las reservas de una fecha calendario.
func (r *BookingRepo) ListByDate(date time.Time) ([]*entity.BookingDetail, error) {
	query := `SELECT` + bookingDetailColumns + bookingDetailFrom + `
		WHERE b.booking_date = $1
		ORDER BY b.booking_time, b.id`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings by date: %w", err)
	}
	return collectBookingDetails(rows)
}

func collectBookingDetails(rows pgx.Rows) ([]*entity.BookingDetail, error) {
	defer rows.Close()
	var list []*entity.BookingDetail
	for rows.Next() {
		d, err := scanBookingDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Count devuelve el total de reservas (para los metadatos de paginación).
func (r *BookingRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM bookings`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

// CountByCustomer cuenta las reservas que referencian al cliente.
func (r *BookingRepo) CountByCustomer(customerID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM bookings WHERE customer_id = $1`, customerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bookings by customer: %w", err)
	}
	return n, nil
}

// CountByEmployee cuenta las reservas que referencian al empleado.
func (r *BookingRepo) CountByEmployee(employeeID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM bookings WHERE employee_id = $1`, employeeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bookings by employee: %w", err)
	}
	return n, nil
}

// Update reemplaza los campos mutables de la reserva.
func (r *BookingRepo) Update(booking *entity.Booking) error {
	query := `
		UPDATE bookings SET booking_date = $2, booking_time = $3, description = $4,
			customer_id = $5, employee_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		booking.ID, booking.BookingDate, booking.BookingTime, booking.Description,
		booking.CustomerID, booking.EmployeeID, booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

// Delete elimina una reserva por ID (no-op si no existe).
func (r *BookingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}
