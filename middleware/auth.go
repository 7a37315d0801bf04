package middleware

import (
	"strings"

	"stagelink/constants"
	"stagelink/logger"
	"stagelink/types"
	"stagelink/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth verifies the session token from the Authorization header or
// the session cookie and loads the claims into the request context.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var token string

		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
					Message: "Invalid authorization header format",
					Status:  fiber.StatusUnauthorized,
				})
			}
			token = tokenParts[1]
		} else {
			// Fall back to the session cookie
			token = c.Cookies(constants.SessionCookie)
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
					Message: "Authorization token missing",
					Status:  fiber.StatusUnauthorized,
				})
			}
		}

		claims, err := utils.ParseSessionToken(token)
		if err != nil {
			logger.Error("Session token rejected", err)
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Session expired. Login again.",
				Status:  fiber.StatusUnauthorized,
			})
		}

		userID, err := utils.UserIDFromClaims(claims)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid session claims",
				Status:  fiber.StatusUnauthorized,
			})
		}

		role, _ := claims["role"].(string)

		c.Locals("claims", claims)
		c.Locals("userID", userID)
		c.Locals("role", role)

		return c.Next()
	}
}

// RequireRole allows the request through only when the session role is one
// of the given roles. Must run after RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "Insufficient permissions",
			Status:  fiber.StatusForbidden,
		})
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}
