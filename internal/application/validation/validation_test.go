package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/validation"
)

func validCustomer() dto.CustomerRequest {
	return dto.CustomerRequest{
		FirstName:    "Ana",
		LastName:     "García",
		Number:       "+57 300 123 4567",
		EmailAddress: "ana@example.com",
	}
}

func validBooking() dto.BookingRequest {
	return dto.BookingRequest{
		BookingDate: "2025-03-04",
		BookingTime: "14:30",
		Description: "corte y peinado",
		CustomerID:  "0f8fad5b-d9cb-469f-a165-70867728950e",
		EmployeeID:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
	}
}

func TestStruct_CustomerValido(t *testing.T) {
	assert.Nil(t, validation.Struct(validCustomer()))
}

// Un payload con varias violaciones debe reportar todos los mensajes juntos,
// en el orden de los campos del struct.
func TestStruct_CustomerVacio_AgregaTodosLosMensajes(t *testing.T) {
	errs := validation.Struct(dto.CustomerRequest{})
	require.Len(t, errs, 4)

	assert.Contains(t, errs[0], "firstName")
	assert.Contains(t, errs[1], "lastName")
	assert.Contains(t, errs[2], "number")
	assert.Contains(t, errs[3], "emailAddress")
	for _, msg := range errs {
		assert.Contains(t, msg, "requerido")
	}
}

func TestStruct_CustomerNombreMuyLargo(t *testing.T) {
	in := validCustomer()
	in.FirstName = strings.Repeat("a", 251)

	errs := validation.Struct(in)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "firstName")
	assert.Contains(t, errs[0], "250")
}

func TestStruct_CustomerEmailInvalido(t *testing.T) {
	in := validCustomer()
	in.EmailAddress = "no-es-un-email"

	errs := validation.Struct(in)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "email válido")
}

func TestStruct_CustomerTelefonoInvalido(t *testing.T) {
	in := validCustomer()
	in.Number = "abc"

	errs := validation.Struct(in)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "teléfono")
}

func TestStruct_EmployeeValido(t *testing.T) {
	assert.Nil(t, validation.Struct(dto.EmployeeRequest{FirstName: "Luis", LastName: "Pérez"}))
}

func TestStruct_BookingValido(t *testing.T) {
	assert.Nil(t, validation.Struct(validBooking()))
}

// La descripción es opcional, pero si viene debe medir entre 5 y 500.
func TestStruct_BookingDescripcionOpcional(t *testing.T) {
	in := validBooking()
	in.Description = ""
	assert.Nil(t, validation.Struct(in))

	in.Description = "corta"
	assert.Nil(t, validation.Struct(in))

	in.Description = "abc"
	errs := validation.Struct(in)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "description")

	in.Description = strings.Repeat("x", 501)
	errs = validation.Struct(in)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "500")
}

func TestStruct_BookingFechaInvalida(t *testing.T) {
	in := validBooking()
	in.BookingDate = "04/03/2025"

	errs := validation.Struct(in)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "bookingDate")
	assert.Contains(t, errs[0], "2006-01-02")
}

func TestStruct_BookingHoraInvalida(t *testing.T) {
	in := validBooking()
	in.BookingTime = "25:99"

	errs := validation.Struct(in)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "bookingTime")
}

func TestStruct_BookingReferenciasNoUUID(t *testing.T) {
	in := validBooking()
	in.CustomerID = "123"
	in.EmployeeID = "abc"

	errs := validation.Struct(in)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "customerId")
	assert.Contains(t, errs[1], "employeeId")
}
