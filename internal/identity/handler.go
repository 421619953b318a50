package identity

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the identity endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type sendOTPRequest struct {
	Phone string `json:"phone"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

type updateUserRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	Avatar   string `json:"avatar"`
}

// SendOTP issues a verification code, creating the user on first contact.
func (h *Handler) SendOTP(c *fiber.Ctx) error {
	var req sendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid JSON body")
	}

	result, err := h.service.RequestOTP(c.UserContext(), req.Phone)
	if err != nil {
		return mapError(err)
	}

	if result.IsNewUser {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "OTP sent successfully",
			"data":    fiber.Map{"isNewUser": true},
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent successfully",
		"data":    result.User,
	})
}

// VerifyOTP validates a submitted code and reports the user's id.
func (h *Handler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid JSON body")
	}

	user, err := h.service.VerifyOTP(c.UserContext(), req.Phone, req.OTP)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP verified successfully",
		"data":    fiber.Map{"userId": user.ID},
	})
}

// GetByID fetches a user by sequential display id.
func (h *Handler) GetByID(c *fiber.Ctx) error {
	user, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

// Update applies a partial profile update.
func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid JSON body")
	}

	user, err := h.service.Update(c.UserContext(), req.ID, UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		UserType: req.UserType,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return mapError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
		"data":    user,
	})
}

// mapError translates service errors to HTTP status codes. Unknown errors
// collapse to 500 without leaking internals.
func mapError(err error) error {
	switch {
	case errors.Is(err, ErrPhoneRequired),
		errors.Is(err, ErrOTPRequired),
		errors.Is(err, ErrIDRequired),
		errors.Is(err, ErrInvalidOTP),
		errors.Is(err, ErrOTPExpired):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, "internal server error")
	}
}
