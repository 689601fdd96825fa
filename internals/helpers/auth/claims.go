package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Getters de claims gravadas em c.Locals pelo AuthMiddleware.
// Todas as rotas privadas podem assumir que o middleware já rodou.

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id ausente no token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id inválido no token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("user_role").(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "role ausente no token")
	}
	return role, nil
}

// GetInstrutorIDFromToken retorna uuid.Nil sem erro quando o usuário não é instrutor.
func GetInstrutorIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("instrutor_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "instrutor_id inválido no token")
	}
	return id, nil
}
