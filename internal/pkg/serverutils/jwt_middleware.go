package serverutils

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LocalSessionId = "session_id"
	LocalUsername  = "username"
	LocalRole      = "role"
)

// SessionClaims ties a token to one server-side session.
type SessionClaims struct {
	SessionId string `json:"session_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func IssueToken(secret string, claims SessionClaims, ttl time.Duration, now time.Time) (string, error) {
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.SessionId == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// NewJwtMiddleware verifies the bearer token and puts its claims in Locals.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}

		claims, err := ParseToken(secret, authHeader[7:])
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}

		ctx.Locals(LocalSessionId, claims.SessionId)
		ctx.Locals(LocalUsername, claims.Username)
		ctx.Locals(LocalRole, claims.Role)
		return ctx.Next()
	}
}

// RequireRole must run after the JWT middleware.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if r, _ := ctx.Locals(LocalRole).(string); r != role {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "access denied"))
		}
		return ctx.Next()
	}
}

// SessionId reads the id placed by the JWT middleware.
func SessionId(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(LocalSessionId).(string)
	return id
}
