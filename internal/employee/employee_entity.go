package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmpID       string    `gorm:"column:emp_id;type:varchar(50);not null;uniqueIndex:uq_employees_emp_id"`
	Name        string    `gorm:"column:name;type:varchar(120);not null"`
	Department  string    `gorm:"column:department;type:varchar(120);not null"`
	Designation string    `gorm:"column:designation;type:varchar(120);not null"`
	JoinDate    string    `gorm:"column:join_date;type:varchar(20);not null"`
	BasicSalary float64   `gorm:"column:basic_salary;not null;default:0"`
	HRA         float64   `gorm:"column:hra;not null;default:0"`
	Allowance   float64   `gorm:"column:allowance;not null;default:0"`
	PFPercent   float64   `gorm:"column:pf_percent;not null;default:12.0"`
	ESIPercent  float64   `gorm:"column:esi_percent;not null;default:0.75"`
	PT          float64   `gorm:"column:pt;not null;default:200.0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// attendanceRef dipakai untuk cascade delete tanpa mengimpor paket attendance.
type attendanceRef struct {
	EmpID string `gorm:"column:emp_id"`
}

func (attendanceRef) TableName() string {
	return "attendances"
}
