package attendanceerrors

import (
	"net/http"

	"hr-payroll/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	// Status 400 mengikuti kontrak API untuk duplikasi (emp_id, month).
	ErrAttendanceAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Attendance already exists for this employee and month",
		http.StatusBadRequest,
	)
)
