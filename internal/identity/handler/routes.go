package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/authenticate", h.Authenticate)
	app.Delete("/api/v1/session", h.Logout)

	// Routes below require a resolvable session token.
	protected := app.Group("/api/v1", h.RequireAuth)
	protected.Get("/me", h.Me)
}
