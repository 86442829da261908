package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-payroll/internal/employee"
	employeeerrors "hr-payroll/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	createFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn     func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByEmpIDFn func(ctx context.Context, empID string) (employee.EmployeeResponse, error)
	updateFn     func(ctx context.Context, empID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn     func(ctx context.Context, empID string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeEmployeeService) GetByEmpID(ctx context.Context, empID string) (employee.EmployeeResponse, error) {
	return f.getByEmpIDFn(ctx, empID)
}
func (f *fakeEmployeeService) Update(ctx context.Context, empID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, empID, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, empID string) error {
	return f.deleteFn(ctx, empID)
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "EMP010", req.EmpID)
				return employee.EmployeeResponse{EmpID: req.EmpID, Name: req.Name}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"emp_id":"EMP010","name":"Anita Desai","department":"Engineering","designation":"Software Engineer","join_date":"2024-04-01","basic_salary":40000,"hra":16000,"allowance":8000}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "EMP010")
	})

	t.Run("validation error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate emp_id", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeIDAlreadyExists
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"emp_id":"EMP010","name":"Anita Desai","department":"Engineering","designation":"Software Engineer","join_date":"2024-04-01"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestEmployeeHandler_GetByEmpID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByEmpIDFn: func(ctx context.Context, empID string) (employee.EmployeeResponse, error) {
				assert.Equal(t, "EMP010", empID)
				return employee.EmployeeResponse{EmpID: empID, Name: "Anita Desai"}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/EMP010", nil)
		c.Params = gin.Params{{Key: "emp_id", Value: "EMP010"}}

		h.GetByEmpID(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Anita Desai")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByEmpIDFn: func(ctx context.Context, empID string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/EMP404", nil)
		c.Params = gin.Params{{Key: "emp_id", Value: "EMP404"}}

		h.GetByEmpID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			deleteFn: func(ctx context.Context, empID string) error {
				assert.Equal(t, "EMP010", empID)
				return nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/employees/EMP010", nil)
		c.Params = gin.Params{{Key: "emp_id", Value: "EMP010"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee deleted successfully")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			deleteFn: func(ctx context.Context, empID string) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/employees/EMP404", nil)
		c.Params = gin.Params{{Key: "emp_id", Value: "EMP404"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
