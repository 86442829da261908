package seed

import (
	"hr-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/initialize-sample-data",
		middleware.RateLimitByIP(1, 2),
		handler.Initialize,
	)
}
