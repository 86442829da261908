package payroll

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payroll := r.Group("/payroll")
	{
		payroll.GET("/:emp_id/:month", handler.GetCalculation)
	}
}
