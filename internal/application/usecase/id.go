package usecase

import "github.com/google/uuid"

// isUUID indica si el ID tiene forma de UUID. Los IDs los asigna el servidor
// con uuid.New(), así que uno malformado no puede corresponder a ningún
// registro: se trata como inexistente sin llegar al store (las columnas id
// son UUID y Postgres rechazaría el cast con un error, no con cero filas).
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
