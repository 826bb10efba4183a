package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/aulahub/course-platform/internal/core/domain"
	"github.com/aulahub/course-platform/internal/core/service"
)

// Session authenticates the request from the HTTP-only session cookie (with
// an Authorization bearer fallback for non-browser clients), verifies the
// JWT and injects the decoded identity into context. No database lookup is
// made: the identity is trusted as of token issuance.
func Session(jwtSecret, cookieName string, revoker service.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c, cookieName)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Não autorizado: Token não fornecido")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Não autorizado: Token inválido")
			}

			identity := identityFromClaims(claims)

			// Deny-list check. Store errors count as not revoked so a
			// Redis outage does not lock every session out.
			if revoker != nil && identity.TokenID != "" {
				if revoked, err := revoker.IsRevoked(c.Request().Context(), identity.TokenID); err == nil && revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "Não autorizado: Token inválido")
				}
			}

			c.Set("identity", identity)
			c.Set("role", string(identity.Role))

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

func identityFromClaims(claims jwt.MapClaims) domain.Identity {
	identity := domain.Identity{
		ID:      stringClaim(claims, "id"),
		Nome:    stringClaim(claims, "nome"),
		Email:   stringClaim(claims, "email"),
		Role:    domain.Role(stringClaim(claims, "role")),
		TokenID: stringClaim(claims, "jti"),
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
	}
	return identity
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
