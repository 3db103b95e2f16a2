package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, SessionClaims{SessionId: "s-1", Username: "admin", Role: "admin"}, time.Hour, time.Now())
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims.SessionId)
	assert.Equal(t, "admin", claims.Role)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := IssueToken(testSecret, SessionClaims{SessionId: "s-1"}, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/me", NewJwtMiddleware(testSecret), func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", SessionId(ctx)))
	})
	app.Get("/admin", NewJwtMiddleware(testSecret), RequireRole("admin"), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("secret detail")
	})
	return app
}

func TestJwtMiddleware(t *testing.T) {
	app := newTestApp()
	token, err := IssueToken(testSecret, SessionClaims{SessionId: "s-9", Role: "user"}, time.Hour, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body BaseResponse[string]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "s-9", body.Data)

	resp, err = app.Test(httptest.NewRequest("GET", "/me", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 500, resp.StatusCode)
	assert.NotContains(t, string(raw), "secret detail")
}

func TestValidateRequest(t *testing.T) {
	type req struct {
		Name  string `validate:"required"`
		Party string `validate:"required,oneof=A B"`
	}

	assert.NoError(t, ValidateRequest(req{Name: "x", Party: "A"}))

	err := ValidateRequest(req{Party: "C"})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "Name is required")
	assert.Contains(t, fe.Message, "Party must be one of [A B]")
}
