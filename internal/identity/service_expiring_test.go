package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arenaplay/arena_play/internal/logging"
	"github.com/arenaplay/arena_play/internal/notification"
	"github.com/arenaplay/arena_play/internal/otp"
	"github.com/arenaplay/arena_play/internal/sequence"
)

func newExpiringService(notifier notification.Notifier, ttl time.Duration) *Service {
	return NewService(
		NewMemoryRepository(),
		sequence.NewMemoryAllocator(),
		otp.NewMemoryStore(),
		notifier,
		logging.Discard(),
		PolicyExpiring,
		ttl,
	)
}

func TestExpiringPolicyVerifyWithinTTL(t *testing.T) {
	svc := newExpiringService(&recordingNotifier{}, time.Minute)
	ctx := context.Background()

	created, err := svc.RequestOTP(ctx, "5551234")
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	user, err := svc.VerifyOTP(ctx, "5551234", created.User.ActiveOTP)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.ID != "001" {
		t.Fatalf("expected 001 got %s", user.ID)
	}
}

func TestExpiringPolicyRejectsExpiredCode(t *testing.T) {
	svc := newExpiringService(&recordingNotifier{}, 10*time.Millisecond)
	ctx := context.Background()

	created, err := svc.RequestOTP(ctx, "5551234")
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	time.Sleep(25 * time.Millisecond)

	if _, err := svc.VerifyOTP(ctx, "5551234", created.User.ActiveOTP); !errors.Is(err, ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestExpiringPolicyReissueRotatesCode(t *testing.T) {
	svc := newExpiringService(&recordingNotifier{}, time.Minute)
	ctx := context.Background()

	first, err := svc.RequestOTP(ctx, "5551234")
	if err != nil {
		t.Fatalf("first request: %v", err)
	}

	second, err := svc.RequestOTP(ctx, "5551234")
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	if second.IsNewUser {
		t.Fatalf("expected existing user")
	}
	if second.User.ID != first.User.ID {
		t.Fatalf("id changed on re-request")
	}

	// the rotated code verifies, confirming the record was updated in step
	if _, err := svc.VerifyOTP(ctx, "5551234", second.User.ActiveOTP); err != nil {
		t.Fatalf("verify rotated code: %v", err)
	}
}

func TestExpiringPolicyConsumesCodeOnSuccess(t *testing.T) {
	svc := newExpiringService(&recordingNotifier{}, time.Minute)
	ctx := context.Background()

	created, err := svc.RequestOTP(ctx, "5551234")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	code := created.User.ActiveOTP

	if _, err := svc.VerifyOTP(ctx, "5551234", code); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if _, err := svc.VerifyOTP(ctx, "5551234", code); !errors.Is(err, ErrOTPExpired) {
		t.Fatalf("expected consumed code to report ErrOTPExpired, got %v", err)
	}
}

func TestExpiringPolicyDeliveryFailureAborts(t *testing.T) {
	svc := newExpiringService(&recordingNotifier{fail: true}, time.Minute)

	if _, err := svc.RequestOTP(context.Background(), "5551234"); err == nil {
		t.Fatalf("expected delivery failure to abort the request")
	}
}
