package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/hepsystems/hepeco/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const WebhookSecretHeader = "X-Webhook-Secret"

// AdminAuth requires "Authorization: Bearer <token>". With no token
// configured the admin routes are closed.
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			abort(c, pkg.NewDomainErrorSimple("ADMIN_DISABLED", "Admin API is not configured", http.StatusServiceUnavailable))
			return
		}
		if !secretEqual(bearerToken(c.GetHeader("Authorization")), token) {
			log.WithField("path", c.FullPath()).Warn("[admin][middleware] unauthorized")
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized))
			return
		}
		c.Next()
	}
}

// WebhookSecret checks the shared secret a provider sends with each push.
func WebhookSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			abort(c, pkg.NewDomainErrorSimple("WEBHOOK_DISABLED", "Webhook is not configured", http.StatusServiceUnavailable))
			return
		}
		if !secretEqual(c.GetHeader(WebhookSecretHeader), secret) {
			log.WithField("remote", c.ClientIP()).Warn("[webhook][middleware] bad secret")
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized))
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func secretEqual(got, want string) bool {
	return got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
