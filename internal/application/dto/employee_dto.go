package dto

// EmployeeRequest payload de creación/actualización de empleado.
type EmployeeRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=250"`
	LastName  string `json:"lastName" validate:"required,min=1,max=250"`
}

// EmployeeResponse representación de un empleado (sin sus reservas).
type EmployeeResponse struct {
	ID        string `json:"employeeId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
