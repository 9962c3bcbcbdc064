package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/http/middleware"
	"travel-backend/internal/services"
)

var (
	authSecret []byte
	authTTL    time.Duration
)

// Configure wires runtime settings used by the auth endpoints. Called once
// from the router before routes are registered.
func Configure(env intconfig.Env) {
	authSecret = []byte(env.JWTSecret)
	authTTL = time.Duration(env.JWTTTLHours) * time.Hour
}

// AuthSecret exposes the configured signing key for the auth middleware.
func AuthSecret() []byte { return authSecret }

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{Secret: authSecret, TTL: authTTL, RequestID: middleware.GetRequestID(c)}
}

// Respond sends the standard success envelope.
func Respond(c *gin.Context, status int, message string, data any) {
	payload := gin.H{"success": true}
	if message != "" {
		payload["message"] = message
	}
	if data != nil {
		payload["data"] = data
	}
	c.JSON(status, payload)
}

// RespondError sends the standard error envelope with request_id included.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success":    false,
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	})
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "body kosong")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid")
		return false
	}
	return true
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid")
		return 0, false
	}
	return id, true
}

func principalOrAbort(c *gin.Context) (int64, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "token diperlukan")
		return 0, false
	}
	return p.ID, true
}
