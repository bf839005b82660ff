package http

import (
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorContextKey = "actor_id"

var ErrMissingToken = errors.New("missing bearer token")

// Claims is the payload of tokens issued by the account service. Only the subject's
// id is trusted; the role is always read from the user directory.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Parse validates token and returns the user id it was issued for.
func (a *Authenticator) Parse(token string) (kernel.UUID, error) {
	parsed, err := a.parser.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return kernel.UUID{}, jwt.ErrTokenInvalidClaims
	}

	return kernel.UUIDFromString(claims.UserID)
}

// Middleware rejects requests without a valid token with 401 and stores the caller's
// id on the context. The token comes from the Authorization header or, for browsers
// opening a WebSocket, from the token query parameter.
func (a *Authenticator) Middleware(skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if skipper(ctx) {
				return next(ctx)
			}

			token, err := bearerToken(ctx)
			if err != nil {
				return unauthorized(ctx, "Authentication required")
			}

			actorID, err := a.Parse(token)
			if err != nil {
				return unauthorized(ctx, "Invalid or expired token")
			}

			ctx.Set(actorContextKey, actorID)
			return next(ctx)
		}
	}
}

func bearerToken(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
		return token, nil
	}
	if token := ctx.QueryParam("token"); token != "" {
		return token, nil
	}
	return "", ErrMissingToken
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{Code: CodeUnauthorized, Message: message})
}

// actorFrom returns the id stored by the auth middleware.
func actorFrom(ctx echo.Context) (kernel.UUID, error) {
	id, ok := ctx.Get(actorContextKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return id, nil
}
