package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

func newEmployeeFixture() (*usecase.EmployeeUseCase, *fakeEmployeeRepo, *fakeBookingRepo) {
	customers := &fakeCustomerRepo{}
	employees := &fakeEmployeeRepo{}
	bookings := &fakeBookingRepo{customers: customers, employees: employees}
	return usecase.NewEmployeeUseCase(employees, bookings), employees, bookings
}

func TestEmployeeUseCase_CreateYGetByID_RoundTrip(t *testing.T) {
	uc, _, _ := newEmployeeFixture()

	created, err := uc.Create(dto.EmployeeRequest{FirstName: "Luis", LastName: "Pérez"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)
}

// Un ID que no tiene forma de UUID equivale a un empleado inexistente.
func TestEmployeeUseCase_IDMalformado_EquivaleAInexistente(t *testing.T) {
	uc, repo, _ := newEmployeeFixture()

	_, err := uc.Create(dto.EmployeeRequest{FirstName: "Luis", LastName: "Pérez"})
	require.NoError(t, err)

	got, err := uc.GetByID("abc")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = uc.Update("abc", dto.EmployeeRequest{FirstName: "Luis", LastName: "Pérez"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Delete("abc"))
	assert.Len(t, repo.items, 1)
}

// Un empleado con reservas asociadas no puede borrarse.
func TestEmployeeUseCase_Delete_ConReservas_ErrConflict(t *testing.T) {
	uc, employees, bookings := newEmployeeFixture()

	created, err := uc.Create(dto.EmployeeRequest{FirstName: "Luis", LastName: "Pérez"})
	require.NoError(t, err)

	require.NoError(t, bookings.Create(&entity.Booking{
		ID:          "b1",
		BookingDate: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		BookingTime: "10:00",
		CustomerID:  "c1",
		EmployeeID:  created.ID,
	}))

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, employees.items, 1)
}
