package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtpkg "github.com/autotoll/tollway/internal/pkg/jwt"
	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "tollway-test",
	}
}

func runMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/update_location", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuthMiddleware(jwtTestConfig())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return rec, c, err
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	vehicleID := uuid.New()
	cfg := &models.Config{JWT: jwtTestConfig()}
	token, _, err := jwtpkg.GenerateToken(vehicleID, "B 1234 XYZ", cfg)
	require.NoError(t, err)

	rec, c, err := runMiddleware(t, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, vehicleID, c.Get("vehicle_id"))
	assert.Equal(t, "B 1234 XYZ", c.Get("vehicle_plate"))
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, err := runMiddleware(t, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, _, err := runMiddleware(t, "Basic abc123")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	rec, _, err := runMiddleware(t, "Bearer not.a.token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_NonUUIDVehicleClaim(t *testing.T) {
	// Signed with the right secret but carrying a vehicle_id that is not
	// a UUID
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"vehicle_id": "not-a-uuid",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	rec, _, runErr := runMiddleware(t, "Bearer "+tokenString)
	require.NoError(t, runErr)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
