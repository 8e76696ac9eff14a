package middleware

import (
	"net/http"
	"time"

	"github.com/hepsystems/hepeco/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Recovery logs a panic and answers with the generic internal error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithFields(log.Fields{"path": c.Request.URL.Path, "panic": recovered}).Error("[http][middleware] recovered from panic")
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}

// RequestLogger replaces gin.Logger so access logs share the logrus format.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("[http] request")
			return
		}
		entry.Debug("[http] request")
	}
}
