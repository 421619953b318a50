package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arenaplay/arena_play/internal/catalog"
)

// RegisterCatalogRoutes wires the transaction history and game/tournament
// catalog endpoints.
func RegisterCatalogRoutes(r fiber.Router, h *catalog.Handler) {
	r.Get("/transactions", h.Transactions)
	r.Get("/games", h.Games)
	r.Get("/getTournament", h.Tournament)
	r.Get("/profile/:userId", h.Profile)
}
