package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewServer builds the trigger surface. The /sync endpoint is gated by a
// shared-secret query parameter and only registered when a secret is
// configured.
func NewServer(handler *Handler, accessKey string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", handler.Health)

	if accessKey != "" {
		gated := r.Group("/", keyGate(accessKey))
		gated.GET("/sync", handler.TriggerSync)
		gated.POST("/sync", handler.TriggerSync)
	} else {
		slog.Warn("sync endpoint disabled (no server access_key configured)")
	}

	return r
}

func keyGate(accessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("key") != accessKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
