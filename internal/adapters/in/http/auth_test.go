package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, userID string, ttl time.Duration) string {
	t.Helper()
	claims := httpadapter.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthenticator_Parse(t *testing.T) {
	auth := httpadapter.NewAuthenticator(testSecret)
	userID := kernel.NewUUID()

	t.Run("valid token", func(t *testing.T) {
		id, err := auth.Parse(signToken(t, testSecret, userID.String(), time.Hour))

		require.NoError(t, err)
		assert.True(t, userID.IsEqual(id))
	})

	t.Run("expired token", func(t *testing.T) {
		_, err := auth.Parse(signToken(t, testSecret, userID.String(), -time.Minute))

		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := auth.Parse(signToken(t, "other-secret", userID.String(), time.Hour))

		require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		_, err := auth.Parse(signToken(t, testSecret, "42", time.Hour))

		require.Error(t, err)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, httpadapter.Claims{UserID: userID.String()}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = auth.Parse(token)

		require.Error(t, err)
	})
}

func TestAuthenticator_Middleware(t *testing.T) {
	auth := httpadapter.NewAuthenticator(testSecret)
	userID := kernel.NewUUID()
	token := signToken(t, testSecret, userID.String(), time.Hour)

	e := echo.New()
	e.Use(auth.Middleware(nil))
	e.GET("/whoami", func(c echo.Context) error {
		id, _ := c.Get("actor_id").(kernel.UUID)
		return c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
	}{
		{"bearer header", "/whoami", "Bearer " + token, http.StatusOK},
		{"token query parameter", "/whoami?token=" + token, "", http.StatusOK},
		{"missing token", "/whoami", "", http.StatusUnauthorized},
		{"not a bearer scheme", "/whoami", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "/whoami", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
			}
		})
	}
}
