package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func parseBearerToken(ctx *fiber.Ctx) (jwt.MapClaims, bool) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, false
	}

	token, err := jwt.Parse(authHeader[7:], func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, ok := parseBearerToken(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid or missing token"))
	}

	ctx.Locals("user_id", claims["user_id"])
	return ctx.Next()
}

// OptionalJwtMiddleware attaches the user id when a valid token is present
// but lets anonymous requests through. Diagnosis works without an account;
// history scoping only applies to logged-in callers.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	if claims, ok := parseBearerToken(ctx); ok {
		ctx.Locals("user_id", claims["user_id"])
	}
	return ctx.Next()
}

// UserIDFromLocals returns the authenticated user id string, if any.
func UserIDFromLocals(ctx *fiber.Ctx) (string, bool) {
	id, ok := ctx.Locals("user_id").(string)
	return id, ok && id != ""
}
