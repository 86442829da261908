package payroll

import (
	"context"

	"gorm.io/gorm"
)

// Baca-saja: payroll tidak menyimpan apa pun, hanya membaca dua tabel milik
// modul lain lewat row struct lokal.
type Repository interface {
	FindEmployeePay(ctx context.Context, empID string) (*EmployeePay, error)
	FindMonthAttendance(ctx context.Context, empID, month string) (*MonthAttendance, error)
}

type employeeRow struct {
	EmpID       string  `gorm:"column:emp_id"`
	Name        string  `gorm:"column:name"`
	BasicSalary float64 `gorm:"column:basic_salary"`
	HRA         float64 `gorm:"column:hra"`
	Allowance   float64 `gorm:"column:allowance"`
	PFPercent   float64 `gorm:"column:pf_percent"`
	ESIPercent  float64 `gorm:"column:esi_percent"`
	PT          float64 `gorm:"column:pt"`
}

func (employeeRow) TableName() string {
	return "employees"
}

type attendanceRow struct {
	EmpID            string `gorm:"column:emp_id"`
	Month            string `gorm:"column:month"`
	TotalWorkingDays int    `gorm:"column:total_working_days"`
	PresentDays      int    `gorm:"column:present_days"`
	LeaveDays        int    `gorm:"column:leave_days"`
	LOPDays          int    `gorm:"column:lop_days"`
}

func (attendanceRow) TableName() string {
	return "attendances"
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindEmployeePay(ctx context.Context, empID string) (*EmployeePay, error) {
	var row employeeRow
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		First(&row).Error
	if err != nil {
		return nil, err
	}

	return &EmployeePay{
		EmpID:       row.EmpID,
		Name:        row.Name,
		BasicSalary: row.BasicSalary,
		HRA:         row.HRA,
		Allowance:   row.Allowance,
		PFPercent:   row.PFPercent,
		ESIPercent:  row.ESIPercent,
		PT:          row.PT,
	}, nil
}

func (r *repository) FindMonthAttendance(ctx context.Context, empID, month string) (*MonthAttendance, error) {
	var row attendanceRow
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Where("month = ?", month).
		First(&row).Error
	if err != nil {
		return nil, err
	}

	return &MonthAttendance{
		Month:            row.Month,
		TotalWorkingDays: row.TotalWorkingDays,
		PresentDays:      row.PresentDays,
		LeaveDays:        row.LeaveDays,
		LOPDays:          row.LOPDays,
	}, nil
}
