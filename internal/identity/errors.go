package identity

import "errors"

var (
	// ErrPhoneRequired reports a missing phone number on a request.
	ErrPhoneRequired = errors.New("phone is required")
	// ErrOTPRequired reports a missing code on a verification request.
	ErrOTPRequired = errors.New("otp is required")
	// ErrIDRequired reports a missing user id.
	ErrIDRequired = errors.New("id is required")
	// ErrNotFound indicates no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidOTP indicates the submitted code does not match the stored one.
	ErrInvalidOTP = errors.New("invalid otp")
	// ErrOTPExpired indicates the code's validity window has passed. Only the
	// expiring lifecycle policy produces it.
	ErrOTPExpired = errors.New("otp has expired")
)
