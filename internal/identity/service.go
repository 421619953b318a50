package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arenaplay/arena_play/internal/notification"
	"github.com/arenaplay/arena_play/internal/otp"
	"github.com/arenaplay/arena_play/internal/sequence"
)

// Policy selects the OTP lifecycle.
type Policy string

const (
	// PolicyStatic keeps the issued code on the user record indefinitely;
	// re-requests hand back the same code and delivery is best effort.
	PolicyStatic Policy = "static"
	// PolicyExpiring regenerates a code per request, bounds its validity by
	// a TTL, and fails the request when delivery fails.
	PolicyExpiring Policy = "expiring"
)

// Service orchestrates the OTP identity flow: issuing codes, creating users
// with sequential display ids, and verifying submitted codes.
type Service struct {
	repo     Repository
	seq      sequence.Allocator
	codes    otp.Store
	notifier notification.Notifier
	logger   *slog.Logger
	policy   Policy
	ttl      time.Duration
}

// NewService builds the identity service. codes is only consulted under
// PolicyExpiring but must be non-nil either way.
func NewService(repo Repository, seq sequence.Allocator, codes otp.Store, notifier notification.Notifier, logger *slog.Logger, policy Policy, ttl time.Duration) *Service {
	return &Service{
		repo:     repo,
		seq:      seq,
		codes:    codes,
		notifier: notifier,
		logger:   logger,
		policy:   policy,
		ttl:      ttl,
	}
}

// OTPRequestResult reports the outcome of an OTP request.
type OTPRequestResult struct {
	User      User
	IsNewUser bool
}

// RequestOTP looks up the user for phone, creating the record on first
// contact. Exactly one user ever exists per phone: the insert races through
// the store's uniqueness constraint, and a lost race falls back to the
// stored record.
func (s *Service) RequestOTP(ctx context.Context, phone string) (OTPRequestResult, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return OTPRequestResult{}, ErrPhoneRequired
	}

	user, err := s.repo.FindByPhone(ctx, phone)
	switch {
	case err == nil:
		return s.reissue(ctx, user)
	case !errors.Is(err, ErrNotFound):
		return OTPRequestResult{}, err
	}

	code := otp.GenerateCode()

	n, err := s.seq.Next(ctx, sequence.SpaceUsers)
	if err != nil {
		return OTPRequestResult{}, err
	}

	candidate := NewUser(sequence.FormatID(n), phone, code, time.Now().UTC())
	stored, created, err := s.repo.CreateIfAbsent(ctx, candidate)
	if err != nil {
		return OTPRequestResult{}, err
	}
	if !created {
		// a concurrent first request won; its record and code stand
		return s.reissue(ctx, stored)
	}

	if s.policy == PolicyExpiring {
		if err := s.codes.Put(ctx, phone, code, s.ttl); err != nil {
			return OTPRequestResult{}, err
		}
	}

	if err := s.deliver(ctx, stored.Phone, code); err != nil {
		return OTPRequestResult{}, err
	}

	s.logger.Info("user created", "user_id", stored.ID, "phone", stored.Phone)
	return OTPRequestResult{User: stored, IsNewUser: true}, nil
}

// reissue handles an OTP request for an existing user. Under the static
// policy the stored code is simply re-sent; under the expiring policy a
// fresh code replaces it.
func (s *Service) reissue(ctx context.Context, user User) (OTPRequestResult, error) {
	code := user.ActiveOTP

	if s.policy == PolicyExpiring {
		code = otp.GenerateCode()
		if err := s.repo.SetActiveOTP(ctx, user.ID, code); err != nil {
			return OTPRequestResult{}, err
		}
		user.ActiveOTP = code
		if err := s.codes.Put(ctx, user.Phone, code, s.ttl); err != nil {
			return OTPRequestResult{}, err
		}
	}

	if err := s.deliver(ctx, user.Phone, code); err != nil {
		return OTPRequestResult{}, err
	}

	return OTPRequestResult{User: user, IsNewUser: false}, nil
}

func (s *Service) deliver(ctx context.Context, phone, code string) error {
	message := notification.Message{
		To:      phone,
		Subject: "Your verification code",
		Body:    fmt.Sprintf("Your verification code is %s.", code),
	}

	err := s.notifier.Send(ctx, message)
	if err == nil {
		return nil
	}

	if s.policy == PolicyExpiring {
		return fmt.Errorf("deliver otp: %w", err)
	}

	// best effort under the static policy; the code stays on the record
	s.logger.Warn("otp delivery failed", "phone", phone, "error", err)
	return nil
}

// VerifyOTP checks the submitted code against the stored one and, on match,
// refreshes the user's last login. The stored code is intentionally not
// cleared: a verified code remains accepted until a new one replaces it.
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) (User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return User{}, ErrPhoneRequired
	}
	if strings.TrimSpace(code) == "" {
		return User{}, ErrOTPRequired
	}

	user, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return User{}, err
	}

	if s.policy == PolicyExpiring {
		if _, err := s.codes.Get(ctx, phone); err != nil {
			if errors.Is(err, otp.ErrNotFound) {
				return User{}, ErrOTPExpired
			}
			return User{}, err
		}
	}

	if user.ActiveOTP != code {
		return User{}, ErrInvalidOTP
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return User{}, err
	}
	user.LastLogin = now

	if s.policy == PolicyExpiring {
		if err := s.codes.Delete(ctx, phone); err != nil {
			s.logger.Warn("otp cleanup failed", "phone", phone, "error", err)
		}
	}

	return user, nil
}

// GetByID fetches a user by sequential display id.
func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	if strings.TrimSpace(id) == "" {
		return User{}, ErrIDRequired
	}
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial profile update and returns the updated record.
func (s *Service) Update(ctx context.Context, id string, fields UserUpdate) (User, error) {
	if strings.TrimSpace(id) == "" {
		return User{}, ErrIDRequired
	}
	return s.repo.Update(ctx, id, fields)
}
