package dto

// ErrorResponse cuerpo de error HTTP. Details lista los mensajes
// campo a campo cuando la falla es de validación.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
