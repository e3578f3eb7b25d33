package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/codewise-hub/identity-service/internal/errors"
)

const accountLocalsKey = "account"

// RequireAuth resolves the bearer token to an account and stores it in
// the request locals for downstream handlers. Requests that do not
// resolve are rejected before the handler runs.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}

	account, err := h.identityService.Resolve(c.Context(), token)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	c.Locals(accountLocalsKey, account)

	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
