package employee

import (
	"hr-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:emp_id", handler.GetByEmpID)
		employees.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)
		employees.PUT("/:emp_id",
			middleware.RateLimitByIP(5, 10),
			handler.Update,
		)
		employees.DELETE("/:emp_id",
			middleware.RateLimitByIP(1, 5),
			handler.Delete,
		)
	}
}
