package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reservas-api/internal/application/dto"
)

// HeaderAPIKey header con el secreto compartido que toda petición debe traer.
const HeaderAPIKey = "X-API-Key"

// APIKeyMiddleware compara el header X-API-Key con la clave configurada
// (cargada una sola vez al inicio) antes de llegar a cualquier handler.
func APIKeyMiddleware(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "API key inválida o ausente"})
		}
		return c.Next()
	}
}
