package app

import (
	"net/http"

	"hr-payroll/internal/assistant"
	"hr-payroll/internal/attendance"
	"hr-payroll/internal/employee"
	"hr-payroll/internal/payroll"
	"hr-payroll/internal/seed"
	"hr-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, db *gorm.DB) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	payrollRepo := payroll.NewRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo)
	attendanceService := attendance.NewService(db, attendanceRepo)
	payrollService := payroll.NewService(payrollRepo)
	assistantService := assistant.NewService()
	seedService := seed.NewService(db, employeeRepo, attendanceRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payrollHandler := payroll.NewHandler(payrollService)
	assistantHandler := assistant.NewHandler(assistantService)
	seedHandler := seed.NewHandler(seedService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		api.GET("/", healthCheck)
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		payroll.RegisterRoutes(api, payrollHandler)
		assistant.RegisterRoutes(api, assistantHandler)
		seed.RegisterRoutes(api, seedHandler)
	}
}

func healthCheck(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "HR & Payroll API is running"})
}
