package dto

// CustomerRequest payload de creación/actualización de cliente.
type CustomerRequest struct {
	FirstName    string `json:"firstName" validate:"required,min=1,max=250"`
	LastName     string `json:"lastName" validate:"required,min=1,max=250"`
	Number       string `json:"number" validate:"required,phone"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
}

// CustomerResponse representación de un cliente (sin sus reservas).
type CustomerResponse struct {
	ID           string `json:"customerId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Number       string `json:"number"`
	EmailAddress string `json:"emailAddress"`
}
