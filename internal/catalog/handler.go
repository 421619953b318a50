package catalog

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the catalog endpoints. Tournament and profile data are
// static payloads in this revision; transactions and games are passthrough
// reads of the sole stored document.
type Handler struct {
	repo Repository
}

// NewHandler constructs a catalog HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Transactions returns the stored transaction history.
func (h *Handler) Transactions(c *fiber.Ctx) error {
	history, err := h.repo.TransactionHistory(c.UserContext())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    history.Transactions,
	})
}

// Games returns the stored game catalog entry.
func (h *Handler) Games(c *fiber.Ctx) error {
	game, err := h.repo.Game(c.UserContext())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    game,
	})
}

var defaultTournament = Tournament{
	ID:        1,
	Name:      "Champions League Finals",
	Game:      "Soccer",
	StartDate: "2024-12-15",
	EndDate:   "2024-12-20",
	Location:  "London, UK",
	Teams: []Team{
		{ID: 101, Name: "Team A"},
		{ID: 102, Name: "Team B"},
		{ID: 103, Name: "Team C"},
		{ID: 104, Name: "Team D"},
	},
	PrizePool:   1000000,
	Description: "The ultimate soccer showdown featuring the best teams from around the globe. Compete for glory and a million-dollar prize pool!",
}

// Tournament returns the static tournament payload.
func (h *Handler) Tournament(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    defaultTournament,
	})
}

// Profile returns the static profile payload, echoing the requested id.
func (h *Handler) Profile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":               c.Params("userId"),
			"name":             "John Doe",
			"email":            "johndoe@example.com",
			"phone":            "1234567890",
			"user_type":        "Player",
			"wallet_balance":   150.75,
			"hold_balance":     20.50,
			"referral_code":    "REF12345",
			"referral_earning": 50.00,
			"avatar":           "https://example.com/images/avatar1.png",
			"last_login":       "2024-12-05T10:15:30Z",
			"user_status":      "unblock",
			"permissions": []fiber.Map{
				{"permission": "Create Game", "status": true},
				{"permission": "Join Tournament", "status": true},
				{"permission": "Withdraw Funds", "status": false},
			},
			"total_deposit":    500.00,
			"total_withdrawal": 200.00,
			"misc_amount":      5.00,
		},
	})
}

func mapError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(http.StatusNotFound, err.Error())
	}
	return fiber.NewError(http.StatusInternalServerError, "internal server error")
}
