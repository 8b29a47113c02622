package entity

import "time"

// Customer representa un cliente de la agenda de reservas.
type Customer struct {
	ID           string
	FirstName    string
	LastName     string
	Number       string // teléfono de contacto
	EmailAddress string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
