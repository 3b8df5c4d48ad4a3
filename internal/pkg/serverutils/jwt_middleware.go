package serverutils

import (
	"os"

	"pawrescue-be/internal/pkg/apperror"
	"pawrescue-be/pkg/access"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware requires a valid bearer token and stores user_id and role
// in the request locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, err := parseBearer(ctx)
	if err != nil {
		return apperror.Unauthenticated("authentication required")
	}

	ctx.Locals("user_id", claims["user_id"])
	if role, ok := claims["role"].(string); ok {
		ctx.Locals("role", role)
	}
	return ctx.Next()
}

// OptionalJwtMiddleware parses a bearer token when present but never rejects.
// Public read routes use it so the policy check sees the real role instead of
// treating every caller as anonymous.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	if claims, err := parseBearer(ctx); err == nil {
		ctx.Locals("user_id", claims["user_id"])
		if role, ok := claims["role"].(string); ok {
			ctx.Locals("role", role)
		}
	}
	return ctx.Next()
}

// RequireOperation consults the access policy table for the acting role.
// Anonymous denials redirect to authentication, authenticated denials get a
// generic refusal that leaks nothing about the resource.
func RequireOperation(op access.Operation) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		decision := access.Decide(ActingRole(ctx), op)
		if decision.Allowed {
			return ctx.Next()
		}
		if decision.RequiresAuth {
			return apperror.Unauthenticated("authentication required")
		}
		return apperror.Forbidden("you are not allowed to perform this action")
	}
}

// ActingRole resolves the role local, defaulting to anonymous.
func ActingRole(ctx *fiber.Ctx) access.Role {
	role, _ := ctx.Locals("role").(string)
	return access.ParseRole(role)
}

func parseBearer(ctx *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, jwt.ErrTokenMalformed
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "default_secret"
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
