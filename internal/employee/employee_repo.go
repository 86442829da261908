package employee

import (
	"context"

	"gorm.io/gorm"
)

// listLimit membatasi hasil find-all, mengikuti batas halaman API.
const listLimit = 1000

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByEmpID(ctx context.Context, empID string) (*Employee, error)
	UpdateFields(ctx context.Context, empID string, fields map[string]interface{}) error
	DeleteByEmpID(ctx context.Context, empID string) (int64, error)
	DeleteAttendanceByEmpID(ctx context.Context, empID string) error
	CountAll(ctx context.Context) (int64, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(listLimit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmpID(ctx context.Context, empID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) UpdateFields(ctx context.Context, empID string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("emp_id = ?", empID).
		Updates(fields).Error
}

func (r *repository) DeleteByEmpID(ctx context.Context, empID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Delete(&Employee{})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteAttendanceByEmpID(ctx context.Context, empID string) error {
	return r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Delete(&attendanceRef{}).Error
}

func (r *repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Count(&count).Error
	return count, err
}
