package entity

import "time"

// Employee representa un empleado que atiende reservas.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
