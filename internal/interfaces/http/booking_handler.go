package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/application/validation"
	"github.com/jhoicas/reservas-api/internal/domain"
)

// BookingHandler maneja las peticiones HTTP de reservas.
type BookingHandler struct {
	uc *usecase.BookingUseCase
}

// NewBookingHandler construye el handler.
func NewBookingHandler(uc *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// List godoc
// @Summary      Listar reservas (paginado)
// @Tags         bookings
// @Produce      json
// @Param        page      query  int  false  "Página"           default(1)
// @Param        pageSize  query  int  false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.BookingListResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)
	out, err := h.uc.List(page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByDate godoc
// @Summary      Listar reservas de una fecha
// @Tags         bookings
// @Produce      json
// @Param        date  path  string  true  "Fecha calendario (2006-01-02)"
// @Success      200  {array}  dto.BookingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bookings/date/{date} [get]
func (h *BookingHandler) ListByDate(c *fiber.Ctx) error {
	out, err := h.uc.ListByDate(c.Params("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "la fecha debe tener el formato 2006-01-02"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reserva por ID
// @Tags         bookings
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear reserva
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BookingRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.BookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(fiber.HeaderLocation, "/api/bookings/"+out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar reserva (reemplazo completo)
// @Tags         bookings
// @Accept       json
// @Param        id    path  string  true  "ID de la reserva"
// @Param        body  body  dto.BookingRequest  true  "Datos a actualizar"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	var in dto.BookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
		}
		return h.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Delete godoc
// @Summary      Eliminar reserva
// @Tags         bookings
// @Param        id  path  string  true  "ID de la reserva"
// @Success      204
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// writeError mapea las fallas de creación/actualización: la validación de
// campos y las referencias faltantes son 400 (con códigos distintos), el
// resto es falla genérica del store.
func (h *BookingHandler) writeError(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: verrs})
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUSTOMER_NOT_FOUND", Message: "el cliente referenciado no existe"})
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "el empleado referenciado no existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
