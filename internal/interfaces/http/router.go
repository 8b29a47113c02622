package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reservas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	EmployeeUC *usecase.EmployeeUseCase
	BookingUC  *usecase.BookingUseCase
	APIKey     string
}

// Router registra las rutas de la API. Todo /api exige el header X-API-Key.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", APIKeyMiddleware(deps.APIKey))

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	bookings := api.Group("/bookings")
	bookingHandler := NewBookingHandler(deps.BookingUC)
	bookings.Get("/", bookingHandler.List)
	bookings.Get("/date/:date", bookingHandler.ListByDate)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Post("/", bookingHandler.Create)
	bookings.Put("/:id", bookingHandler.Update)
	bookings.Delete("/:id", bookingHandler.Delete)
}
