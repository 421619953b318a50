package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arenaplay/arena_play/internal/identity"
)

// RegisterIdentityRoutes wires the OTP flow and user endpoints. The rate
// limiter guards only the send endpoint.
func RegisterIdentityRoutes(r fiber.Router, h *identity.Handler, sendLimit fiber.Handler) {
	r.Post("/send-otp", sendLimit, h.SendOTP)
	r.Post("/verify-otp", h.VerifyOTP)
	r.Get("/users/byId/:id", h.GetByID)
	r.Put("/update-user", h.Update)
}
