package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmpID            string    `gorm:"column:emp_id;type:varchar(50);not null;uniqueIndex:uq_attendance_emp_month"`
	Month            string    `gorm:"column:month;type:varchar(20);not null;uniqueIndex:uq_attendance_emp_month"`
	TotalWorkingDays int       `gorm:"column:total_working_days;not null;default:0"`
	PresentDays      int       `gorm:"column:present_days;not null;default:0"`
	LeaveDays        int       `gorm:"column:leave_days;not null;default:0"`
	LOPDays          int       `gorm:"column:lop_days;not null;default:0"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// employeeRef hanya dipakai untuk cek keberadaan employee.
type employeeRef struct {
	EmpID string `gorm:"column:emp_id"`
}

func (employeeRef) TableName() string {
	return "employees"
}
