package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrCustomerNotFound = errors.New("el cliente referenciado no existe")
	ErrEmployeeNotFound = errors.New("el empleado referenciado no existe")
	ErrConflict         = errors.New("el recurso tiene reservas asociadas")
)
