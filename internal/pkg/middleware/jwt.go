package middleware

import (
	"fmt"
	"strings"

	jwtpkg "github.com/autotoll/tollway/internal/pkg/jwt"
	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/autotoll/tollway/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware creates a middleware for session token authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			vehicleIDStr, ok := (*claims)["vehicle_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing vehicle_id claim")
			}

			vehicleID, err := uuid.Parse(fmt.Sprintf("%v", vehicleIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: vehicle_id is not a valid UUID")
			}

			// Set the vehicle identity in the context
			c.Set("vehicle_id", vehicleID)
			if plate, ok := (*claims)["plate"]; ok {
				c.Set("vehicle_plate", fmt.Sprintf("%v", plate))
			}

			return next(c)
		}
	}
}
