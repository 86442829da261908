package payroll_test

import (
	"testing"

	"hr-payroll/internal/payroll"
	payrollerrors "hr-payroll/internal/payroll/errors"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	emp := payroll.EmployeePay{
		EmpID:       "EMP001",
		Name:        "Rajesh Kumar",
		BasicSalary: 40000,
		HRA:         16000,
		Allowance:   8000,
		PFPercent:   12,
		ESIPercent:  0.75,
		PT:          200,
	}

	t.Run("full month without lop", func(t *testing.T) {
		att := payroll.MonthAttendance{
			Month:            "2025-01",
			TotalWorkingDays: 22,
			PresentDays:      20,
			LeaveDays:        2,
			LOPDays:          0,
		}

		calc, err := payroll.Calculate(emp, att)

		assert.NoError(t, err)
		assert.Equal(t, 40000.0, calc.BasicSalary)
		assert.Equal(t, 16000.0, calc.HRA)
		assert.Equal(t, 8000.0, calc.Allowance)
		assert.Equal(t, 64000.0, calc.GrossSalary)
		assert.Equal(t, 4800.0, calc.PFDeduction)
		assert.Equal(t, 480.0, calc.ESIDeduction)
		assert.Equal(t, 200.0, calc.PTDeduction)
		assert.Equal(t, 5480.0, calc.TotalDeductions)
		assert.Equal(t, 58520.0, calc.NetSalary)
		assert.Equal(t, 22, calc.PaidDays)
		assert.Equal(t, 22, calc.TotalWorkingDays)
		assert.Equal(t, "EMP001", calc.EmpID)
		assert.Equal(t, "Rajesh Kumar", calc.Name)
		assert.Equal(t, "2025-01", calc.Month)
	})

	t.Run("prorates each component by lop days", func(t *testing.T) {
		calc, err := payroll.Calculate(payroll.EmployeePay{
			EmpID:       "EMP003",
			Name:        "Amit Patel",
			BasicSalary: 30000,
			HRA:         12000,
			Allowance:   5000,
			PFPercent:   12,
			ESIPercent:  0.75,
			PT:          200,
		}, payroll.MonthAttendance{
			Month:            "2025-01",
			TotalWorkingDays: 22,
			PresentDays:      19,
			LeaveDays:        2,
			LOPDays:          1,
		})

		assert.NoError(t, err)
		assert.InDelta(t, 28636.36, calc.BasicSalary, 0.01)
		assert.InDelta(t, 11454.55, calc.HRA, 0.01)
		assert.InDelta(t, 4772.73, calc.Allowance, 0.01)
		assert.InDelta(t, calc.BasicSalary+calc.HRA+calc.Allowance, calc.GrossSalary, 1e-9)
		assert.Equal(t, 21, calc.PaidDays)
	})

	t.Run("no pt deduction when nothing was paid", func(t *testing.T) {
		calc, err := payroll.Calculate(emp, payroll.MonthAttendance{
			Month:            "2025-02",
			TotalWorkingDays: 20,
			PresentDays:      0,
			LeaveDays:        0,
			LOPDays:          20,
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, calc.PaidDays)
		assert.Equal(t, 0.0, calc.PTDeduction)
	})

	t.Run("zero working days is rejected", func(t *testing.T) {
		_, err := payroll.Calculate(emp, payroll.MonthAttendance{
			Month:            "2025-03",
			TotalWorkingDays: 0,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrZeroWorkingDays)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		att := payroll.MonthAttendance{
			Month:            "2025-01",
			TotalWorkingDays: 26,
			PresentDays:      23,
			LeaveDays:        1,
			LOPDays:          2,
		}

		first, err := payroll.Calculate(emp, att)
		assert.NoError(t, err)
		second, err := payroll.Calculate(emp, att)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
