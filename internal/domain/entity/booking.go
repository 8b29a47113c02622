package entity

import "time"

// Booking representa una reserva entre un cliente y un empleado.
// BookingDate guarda solo el componente de fecha; la hora del día va en BookingTime ("HH:MM").
type Booking struct {
	ID          string
	BookingDate time.Time
	BookingTime string
	Description string
	CustomerID  string
	EmployeeID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookingDetail es una reserva con la instantánea del cliente y el empleado
// al momento de la lectura (las respuestas no embeben colecciones inversas).
type BookingDetail struct {
	Booking
	Customer Customer
	Employee Employee
}
