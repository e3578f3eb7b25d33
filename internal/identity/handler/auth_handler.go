package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/codewise-hub/identity-service/internal/errors"
	"github.com/codewise-hub/identity-service/internal/identity/domain"
	"github.com/codewise-hub/identity-service/internal/identity/dto"
	"github.com/codewise-hub/identity-service/internal/identity/service"
)

type AuthHandler struct {
	identityService *service.IdentityService
}

func NewAuthHandler(identityService *service.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	// Capture metadata
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	account, token, err := h.identityService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrAccountExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case autherror.IsValidation(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Account: dto.NewAccountOutput(account),
		Token:   token,
	})
}

func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	// Capture metadata
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	account, token, err := h.identityService.Authenticate(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		Account: dto.NewAccountOutput(account),
		Token:   token,
	})
}

// Logout revokes the presented session. The token must still resolve;
// revoking with a garbage token is indistinguishable from presenting
// one anywhere else.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}

	if err := h.identityService.Revoke(c.Context(), token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the account resolved by the auth middleware.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	account, ok := c.Locals(accountLocalsKey).(*domain.Account)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrInvalidToken.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewAccountOutput(account))
}
