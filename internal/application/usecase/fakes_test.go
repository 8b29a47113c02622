package usecase_test

import (
	"time"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Preservan el orden de
// inserción y simulan el contrato nil-cuando-no-existe de los repos reales.

type fakeCustomerRepo struct {
	items []*entity.Customer
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range r.items {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	for i, existing := range r.items {
		if existing.ID == c.ID {
			cp := *c
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeEmployeeRepo struct {
	items []*entity.Employee
}

var _ repository.EmployeeRepository = (*fakeEmployeeRepo)(nil)

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	cp := *e
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	for _, e := range r.items {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) List() ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(r.items))
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	for i, existing := range r.items {
		if existing.ID == e.ID {
			cp := *e
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeBookingRepo resuelve los detalles contra los fakes de cliente y empleado,
// como hace el JOIN del repositorio real.
type fakeBookingRepo struct {
	items     []*entity.Booking
	customers *fakeCustomerRepo
	employees *fakeEmployeeRepo
}

var _ repository.BookingRepository = (*fakeBookingRepo)(nil)

func (r *fakeBookingRepo) detail(b *entity.Booking) *entity.BookingDetail {
	customer, _ := r.customers.GetByID(b.CustomerID)
	employee, _ := r.employees.GetByID(b.EmployeeID)
	d := &entity.BookingDetail{Booking: *b}
	if customer != nil {
		d.Customer = *customer
	}
	if employee != nil {
		d.Employee = *employee
	}
	return d
}

func (r *fakeBookingRepo) Create(b *entity.Booking) error {
	cp := *b
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*entity.BookingDetail, error) {
	for _, b := range r.items {
		if b.ID == id {
			return r.detail(b), nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) List(limit, offset int) ([]*entity.BookingDetail, error) {
	out := []*entity.BookingDetail{}
	for i := offset; i < len(r.items) && len(out) < limit; i++ {
		out = append(out, r.detail(r.items[i]))
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByDate(date time.Time) ([]*entity.BookingDetail, error) {
	y, m, d := date.Date()
	out := []*entity.BookingDetail{}
	for _, b := range r.items {
		by, bm, bd := b.BookingDate.Date()
		if by == y && bm == m && bd == d {
			out = append(out, r.detail(b))
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Count() (int, error) {
	return len(r.items), nil
}

func (r *fakeBookingRepo) CountByCustomer(customerID string) (int, error) {
	n := 0
	for _, b := range r.items {
		if b.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) CountByEmployee(employeeID string) (int, error) {
	n := 0
	for _, b := range r.items {
		if b.EmployeeID == employeeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) Update(b *entity.Booking) error {
	for i, existing := range r.items {
		if existing.ID == b.ID {
			cp := *b
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	for i, b := range r.items {
		if b.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
