package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/domain"
	"travel-backend/internal/services"
)

const principalKey = "principal"

// Authenticate resolves the bearer token into a Principal, re-checking the
// account in the database on every request so revoked agents lose access
// immediately. A missing token is 401, a broken or expired one is 403, and
// a token whose account no longer exists (or is inactive) is 401 again.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			abortJSON(c, http.StatusUnauthorized, "token diperlukan")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abortJSON(c, http.StatusUnauthorized, "format Authorization harus Bearer <token>")
			return
		}

		auth := services.AuthService{Secret: secret, RequestID: GetRequestID(c)}
		principal, err := auth.ResolvePrincipal(strings.TrimSpace(parts[1]))
		if err != nil {
			if domain.IsForbidden(err) {
				abortJSON(c, http.StatusForbidden, "token tidak valid atau kedaluwarsa")
				return
			}
			abortJSON(c, http.StatusUnauthorized, "akun tidak ditemukan atau nonaktif")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRole guards a route group for a single role.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			abortJSON(c, http.StatusUnauthorized, "token diperlukan")
			return
		}
		if p.Role != role {
			abortJSON(c, http.StatusForbidden, "akses ditolak untuk role ini")
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc    { return RequireRole(domain.RoleAdmin) }
func RequireAgent() gin.HandlerFunc    { return RequireRole(domain.RoleAgent) }
func RequireCustomer() gin.HandlerFunc { return RequireRole(domain.RoleCustomer) }

// GetPrincipal extracts the authenticated principal from gin context.
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(domain.Principal); ok {
			return p, true
		}
	}
	return domain.Principal{}, false
}

func abortJSON(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":    false,
		"message":    message,
		"request_id": GetRequestID(c),
	})
}
