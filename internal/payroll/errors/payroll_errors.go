package payrollerrors

import (
	"net/http"

	"hr-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found for this month",
		http.StatusNotFound,
	)

	ErrZeroWorkingDays = apperror.New(
		apperror.CodeInvalidInput,
		"Total working days must be greater than zero",
		http.StatusBadRequest,
	)
)
