package dto

// BookingRequest payload de creación/actualización de reserva.
// La fecha es solo calendario ("2006-01-02") y la hora del día va aparte ("15:04").
type BookingRequest struct {
	BookingDate string `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	BookingTime string `json:"bookingTime" validate:"required,datetime=15:04"`
	Description string `json:"description" validate:"omitempty,min=5,max=500"`
	CustomerID  string `json:"customerId" validate:"required,uuid"`
	EmployeeID  string `json:"employeeId" validate:"required,uuid"`
}

// BookingResponse representación de una reserva con la instantánea
// del cliente y el empleado (evita referencias circulares).
type BookingResponse struct {
	ID          string           `json:"bookingId"`
	BookingDate string           `json:"bookingDate"`
	BookingTime string           `json:"bookingTime"`
	Description string           `json:"description,omitempty"`
	Customer    CustomerResponse `json:"customer"`
	Employee    EmployeeResponse `json:"employee"`
}

// BookingListResponse página de reservas con metadatos de paginación.
type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	TotalCount int                `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}
