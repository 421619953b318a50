package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arenaplay/arena_play/internal/config"
	"github.com/arenaplay/arena_play/internal/logging"
	"github.com/arenaplay/arena_play/internal/notification"
)

type captureNotifier struct {
	messages []notification.Message
}

func (n *captureNotifier) Send(_ context.Context, message notification.Message) error {
	n.messages = append(n.messages, message)
	return nil
}

// lastCode pulls the issued code out of the delivered message body.
func (n *captureNotifier) lastCode(t *testing.T) string {
	t.Helper()
	if len(n.messages) == 0 {
		t.Fatalf("no message delivered")
	}
	body := n.messages[len(n.messages)-1].Body
	code := strings.TrimSuffix(strings.TrimPrefix(body, "Your verification code is "), ".")
	if len(code) != 6 {
		t.Fatalf("could not extract code from %q", body)
	}
	return code
}

func devConfig() config.Config {
	return config.Config{
		AppName:        "arena-test",
		AppEnv:         "development",
		Port:           "0",
		OTPPolicy:      "static",
		OTPTTL:         5 * time.Minute,
		OTPSendLimit:   100,
		IdempotencyTTL: time.Hour,
	}
}

func setupApp(t *testing.T) (*fiber.App, *captureNotifier) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	notifier := &captureNotifier{}
	err := Setup(app, Deps{
		Cfg:      devConfig(),
		Logger:   logging.Discard(),
		Notifier: notifier,
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	return app, notifier
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	decoded := map[string]any{}
	if len(payload) > 0 {
		_ = json.Unmarshal(payload, &decoded)
	}
	return resp.StatusCode, decoded
}

func TestSendAndVerifyOTPFlow(t *testing.T) {
	app, notifier := setupApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/send-otp", `{"phone":"5551234"}`)
	if status != fiber.StatusOK {
		t.Fatalf("send-otp: expected 200 got %d", status)
	}
	data, _ := body["data"].(map[string]any)
	if data["isNewUser"] != true {
		t.Fatalf("expected isNewUser true, got %v", body)
	}

	code := notifier.lastCode(t)

	status, _ = doJSON(t, app, fiber.MethodPost, "/api/verify-otp", `{"phone":"5551234","otp":"000000"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("wrong code: expected 400 got %d", status)
	}

	status, body = doJSON(t, app, fiber.MethodPost, "/api/verify-otp", `{"phone":"5551234","otp":"`+code+`"}`)
	if status != fiber.StatusOK {
		t.Fatalf("verify-otp: expected 200 got %d", status)
	}
	data, _ = body["data"].(map[string]any)
	if data["userId"] != "001" {
		t.Fatalf("expected userId 001, got %v", body)
	}
}

func TestSendOTPExistingUserReturnsRecord(t *testing.T) {
	app, _ := setupApp(t)

	if status, _ := doJSON(t, app, fiber.MethodPost, "/api/send-otp", `{"phone":"5551234"}`); status != fiber.StatusOK {
		t.Fatalf("first send: %d", status)
	}

	status, body := doJSON(t, app, fiber.MethodPost, "/api/send-otp", `{"phone":"5551234"}`)
	if status != fiber.StatusOK {
		t.Fatalf("second send: expected 200 got %d", status)
	}
	data, _ := body["data"].(map[string]any)
	if data["id"] != "001" {
		t.Fatalf("expected existing record with id 001, got %v", body)
	}
}

func TestSendOTPRequiresPhone(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/send-otp", `{}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", status)
	}
	if body["success"] != false {
		t.Fatalf("expected success false, got %v", body)
	}
}

func TestGetUserByID(t *testing.T) {
	app, _ := setupApp(t)

	if status, _ := doJSON(t, app, fiber.MethodPost, "/api/send-otp", `{"phone":"5551234"}`); status != fiber.StatusOK {
		t.Fatalf("send: unexpected status")
	}

	status, body := doJSON(t, app, fiber.MethodGet, "/api/users/byId/001", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
	data, _ := body["data"].(map[string]any)
	if data["phone"] != "5551234" {
		t.Fatalf("unexpected user payload: %v", body)
	}

	if status, _ := doJSON(t, app, fiber.MethodGet, "/api/users/byId/999", ""); status != fiber.StatusNotFound {
		t.Fatalf("expected 404 got %d", status)
	}
}

func TestUpdateUser(t *testing.T) {
	app, _ := setupApp(t)

	if status, _ := doJSON(t, app, fiber.MethodPost, "/api/send-otp", `{"phone":"5551234"}`); status != fiber.StatusOK {
		t.Fatalf("send: unexpected status")
	}

	status, body := doJSON(t, app, fiber.MethodPut, "/api/update-user", `{"id":"001","name":"Jane","user_type":"Admin"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
	data, _ := body["data"].(map[string]any)
	if data["name"] != "Jane" || data["user_type"] != "Admin" {
		t.Fatalf("update not applied: %v", body)
	}

	if status, _ := doJSON(t, app, fiber.MethodPut, "/api/update-user", `{"id":"999","name":"Nobody"}`); status != fiber.StatusNotFound {
		t.Fatalf("expected 404 got %d", status)
	}

	if status, _ := doJSON(t, app, fiber.MethodPut, "/api/update-user", `{"name":"NoID"}`); status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", status)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, fiber.MethodGet, "/api/transactions", "")
	if status != fiber.StatusOK {
		t.Fatalf("transactions: expected 200 got %d", status)
	}
	if items, ok := body["data"].([]any); !ok || len(items) != 4 {
		t.Fatalf("unexpected transactions payload: %v", body)
	}

	status, body = doJSON(t, app, fiber.MethodGet, "/api/games", "")
	if status != fiber.StatusOK {
		t.Fatalf("games: expected 200 got %d", status)
	}
	data, _ := body["data"].(map[string]any)
	if data["name"] != "Space Adventure" {
		t.Fatalf("unexpected game payload: %v", body)
	}

	status, body = doJSON(t, app, fiber.MethodGet, "/api/getTournament", "")
	if status != fiber.StatusOK {
		t.Fatalf("tournament: expected 200 got %d", status)
	}
	data, _ = body["data"].(map[string]any)
	if data["name"] != "Champions League Finals" {
		t.Fatalf("unexpected tournament payload: %v", body)
	}

	status, body = doJSON(t, app, fiber.MethodGet, "/api/profile/42", "")
	if status != fiber.StatusOK {
		t.Fatalf("profile: expected 200 got %d", status)
	}
	data, _ = body["data"].(map[string]any)
	if data["id"] != "42" {
		t.Fatalf("profile should echo the requested id: %v", body)
	}
}

func TestHealthz(t *testing.T) {
	app, _ := setupApp(t)

	if status, _ := doJSON(t, app, fiber.MethodGet, "/healthz", ""); status != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
}

func TestSetupRequiresBackendsOutsideDev(t *testing.T) {
	cfg := devConfig()
	cfg.AppEnv = "production"

	err := Setup(fiber.New(), Deps{Cfg: cfg, Logger: logging.Discard()})
	if err == nil {
		t.Fatalf("expected setup to fail without mongo and redis")
	}
}
