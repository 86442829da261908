package employeeerrors

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

	// Status 400 mengikuti kontrak API untuk duplikasi emp_id.
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusBadRequest,
	)
)
