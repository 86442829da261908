package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS membangun konfigurasi dari CORS_ORIGINS (comma-separated, "*" untuk semua).
func CORS(origins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		list := strings.Split(origins, ",")
		for i := range list {
			list[i] = strings.TrimSpace(list[i])
		}
		cfg.AllowOrigins = list
	}

	return cors.New(cfg)
}
