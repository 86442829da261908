package assistant

import (
	"hr-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/ai-assistant",
		middleware.RateLimitByIP(5, 10),
		handler.Generate,
	)
}
