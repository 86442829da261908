package attendance

import (
	"context"

	"gorm.io/gorm"
)

const listLimit = 1000

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Attendance) error
	FindAll(ctx context.Context) ([]Attendance, error)
	FindByEmpID(ctx context.Context, empID string) ([]Attendance, error)
	FindByEmpIDAndMonth(ctx context.Context, empID, month string) (*Attendance, error)
	UpdateFields(ctx context.Context, empID, month string, fields map[string]interface{}) error
	DeleteByEmpIDAndMonth(ctx context.Context, empID, month string) (int64, error)
	EmployeeExists(ctx context.Context, empID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Order("emp_id ASC, month ASC").
		Limit(listLimit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmpID(ctx context.Context, empID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Order("month ASC").
		Limit(listLimit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmpIDAndMonth(ctx context.Context, empID, month string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Where("month = ?", month).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) UpdateFields(ctx context.Context, empID, month string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("emp_id = ?", empID).
		Where("month = ?", month).
		Updates(fields).Error
}

func (r *repository) DeleteByEmpIDAndMonth(ctx context.Context, empID, month string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Where("month = ?", month).
		Delete(&Attendance{})
	return res.RowsAffected, res.Error
}

func (r *repository) EmployeeExists(ctx context.Context, empID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employeeRef{}).
		Where("emp_id = ?", empID).
		Count(&count).Error
	return count > 0, err
}
