package app

import (
	"os"

	"hr-payroll/internal/attendance"
	"hr-payroll/internal/employee"
	"hr-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	// Unique index uq_employees_emp_id dan uq_attendance_emp_month dibuat di
	// sini; keduanya yang menjamin insert-if-absent atomik di level store.
	if err := db.AutoMigrate(&employee.Employee{}, &attendance.Attendance{}); err != nil {
		return err
	}

	// Register Modules & Routes
	registerModules(router, db)

	return nil
}
