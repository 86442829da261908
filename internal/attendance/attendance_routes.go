package attendance

import (
	"hr-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("", handler.GetAll)
		attendance.GET("/:emp_id", handler.GetByEmpID)
		attendance.GET("/:emp_id/:month", handler.GetByMonth)
		attendance.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)
		attendance.PUT("/:emp_id/:month",
			middleware.RateLimitByIP(5, 10),
			handler.Update,
		)
		attendance.DELETE("/:emp_id/:month",
			middleware.RateLimitByIP(1, 5),
			handler.Delete,
		)
	}
}
