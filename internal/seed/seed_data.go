package seed

import (
	"time"

	"hr-payroll/internal/attendance"
	"hr-payroll/internal/employee"

	"github.com/google/uuid"
)

func sampleEmployees(now time.Time) []employee.Employee {
	return []employee.Employee{
		{
			ID:          uuid.New(),
			EmpID:       "EMP001",
			Name:        "Rajesh Kumar",
			Department:  "Engineering",
			Designation: "Senior Software Engineer",
			JoinDate:    "2022-01-15",
			BasicSalary: 40000.0,
			HRA:         16000.0,
			Allowance:   8000.0,
			PFPercent:   12.0,
			ESIPercent:  0.75,
			PT:          200.0,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			EmpID:       "EMP002",
			Name:        "Priya Sharma",
			Department:  "HR",
			Designation: "HR Manager",
			JoinDate:    "2021-06-10",
			BasicSalary: 35000.0,
			HRA:         14000.0,
			Allowance:   6000.0,
			PFPercent:   12.0,
			ESIPercent:  0.75,
			PT:          200.0,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			EmpID:       "EMP003",
			Name:        "Amit Patel",
			Department:  "Finance",
			Designation: "Accountant",
			JoinDate:    "2023-03-20",
			BasicSalary: 30000.0,
			HRA:         12000.0,
			Allowance:   5000.0,
			PFPercent:   12.0,
			ESIPercent:  0.75,
			PT:          200.0,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			EmpID:       "EMP004",
			Name:        "Sneha Reddy",
			Department:  "Marketing",
			Designation: "Marketing Executive",
			JoinDate:    "2022-09-01",
			BasicSalary: 28000.0,
			HRA:         11200.0,
			Allowance:   4500.0,
			PFPercent:   12.0,
			ESIPercent:  0.75,
			PT:          200.0,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			EmpID:       "EMP005",
			Name:        "Vikram Singh",
			Department:  "Operations",
			Designation: "Operations Manager",
			JoinDate:    "2020-11-15",
			BasicSalary: 38000.0,
			HRA:         15200.0,
			Allowance:   7000.0,
			PFPercent:   12.0,
			ESIPercent:  0.75,
			PT:          200.0,
			CreatedAt:   now,
		},
	}
}

func sampleAttendance(now time.Time) []attendance.Attendance {
	return []attendance.Attendance{
		{
			ID:               uuid.New(),
			EmpID:            "EMP001",
			Month:            "2025-01",
			TotalWorkingDays: 22,
			PresentDays:      20,
			LeaveDays:        2,
			LOPDays:          0,
			CreatedAt:        now,
		},
		{
			ID:               uuid.New(),
			EmpID:            "EMP002",
			Month:            "2025-01",
			TotalWorkingDays: 22,
			PresentDays:      22,
			LeaveDays:        0,
			LOPDays:          0,
			CreatedAt:        now,
		},
		{
			ID:               uuid.New(),
			EmpID:            "EMP003",
			Month:            "2025-01",
			TotalWorkingDays: 22,
			PresentDays:      19,
			LeaveDays:        2,
			LOPDays:          1,
			CreatedAt:        now,
		},
		{
			ID:               uuid.New(),
			EmpID:            "EMP004",
			Month:            "2025-01",
			TotalWorkingDays: 22,
			PresentDays:      21,
			LeaveDays:        1,
			LOPDays:          0,
			CreatedAt:        now,
		},
		{
			ID:               uuid.New(),
			EmpID:            "EMP005",
			Month:            "2025-01",
			TotalWorkingDays: 22,
			PresentDays:      20,
			LeaveDays:        1,
			LOPDays:          1,
			CreatedAt:        now,
		},
	}
}
