package attendance_test

import (
	"context"
	"testing"

	"hr-payroll/internal/attendance"
	attendanceerrors "hr-payroll/internal/attendance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeAttendanceRepository struct {
	withTxFn                func(tx *gorm.DB) attendance.Repository
	createFn                func(ctx context.Context, a *attendance.Attendance) error
	findAllFn               func(ctx context.Context) ([]attendance.Attendance, error)
	findByEmpIDFn           func(ctx context.Context, empID string) ([]attendance.Attendance, error)
	findByEmpIDAndMonthFn   func(ctx context.Context, empID, month string) (*attendance.Attendance, error)
	updateFieldsFn          func(ctx context.Context, empID, month string, fields map[string]interface{}) error
	deleteByEmpIDAndMonthFn func(ctx context.Context, empID, month string) (int64, error)
	employeeExistsFn        func(ctx context.Context, empID string) (bool, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *gorm.DB) attendance.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindAll(ctx context.Context) ([]attendance.Attendance, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindByEmpID(ctx context.Context, empID string) ([]attendance.Attendance, error) {
	if f.findByEmpIDFn != nil {
		return f.findByEmpIDFn(ctx, empID)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindByEmpIDAndMonth(ctx context.Context, empID, month string) (*attendance.Attendance, error) {
	if f.findByEmpIDAndMonthFn != nil {
		return f.findByEmpIDAndMonthFn(ctx, empID, month)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) UpdateFields(ctx context.Context, empID, month string, fields map[string]interface{}) error {
	if f.updateFieldsFn != nil {
		return f.updateFieldsFn(ctx, empID, month, fields)
	}
	return nil
}

func (f *fakeAttendanceRepository) DeleteByEmpIDAndMonth(ctx context.Context, empID, month string) (int64, error) {
	if f.deleteByEmpIDAndMonthFn != nil {
		return f.deleteByEmpIDAndMonthFn(ctx, empID, month)
	}
	return 0, nil
}

func (f *fakeAttendanceRepository) EmployeeExists(ctx context.Context, empID string) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, empID)
	}
	return false, nil
}

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service attendance.Service
	repo    *fakeAttendanceRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	repo := &fakeAttendanceRepository{}
	svc := attendance.NewService(db, repo)

	return &serviceDeps{
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func intPtr(v int) *int { return &v }

func TestAttendanceService_Create(t *testing.T) {
	ctx := context.Background()

	req := attendance.CreateAttendanceRequest{
		EmpID:            "EMP001",
		Month:            "2025-01",
		TotalWorkingDays: 22,
		PresentDays:      20,
		LeaveDays:        2,
		LOPDays:          0,
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.employeeExistsFn = func(ctx context.Context, empID string) (bool, error) {
			assert.Equal(t, "EMP001", empID)
			return true, nil
		}
		deps.repo.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			assert.Equal(t, "2025-01", a.Month)
			assert.Equal(t, 22, a.TotalWorkingDays)
			assert.False(t, a.CreatedAt.IsZero())
			return nil
		}

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "EMP001", resp.EmpID)
		assert.Equal(t, 20, resp.PresentDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.employeeExistsFn = func(ctx context.Context, empID string) (bool, error) {
			return false, nil
		}
		deps.repo.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			t.Fatal("Create should not be called when the employee is missing")
			return nil
		}

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate month maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.employeeExistsFn = func(ctx context.Context, empID string) (bool, error) {
			return true, nil
		}
		deps.repo.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_emp_month"}
		}

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_GetByMonth(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.findByEmpIDAndMonthFn = func(ctx context.Context, empID, month string) (*attendance.Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByMonth(ctx, "EMP001", "2025-02")

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}

func TestAttendanceService_Update(t *testing.T) {
	ctx := context.Background()

	current := &attendance.Attendance{
		EmpID:            "EMP001",
		Month:            "2025-01",
		TotalWorkingDays: 22,
		PresentDays:      20,
		LeaveDays:        2,
	}

	t.Run("partial update writes only provided fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByEmpIDAndMonthFn = func(ctx context.Context, empID, month string) (*attendance.Attendance, error) {
			return current, nil
		}
		deps.repo.updateFieldsFn = func(ctx context.Context, empID, month string, fields map[string]interface{}) error {
			assert.Equal(t, map[string]interface{}{"lop_days": 1}, fields)
			return nil
		}

		resp, err := deps.service.Update(ctx, "EMP001", "2025-01", attendance.UpdateAttendanceRequest{
			LOPDays: intPtr(1),
		})

		assert.NoError(t, err)
		assert.Equal(t, "2025-01", resp.Month)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("empty payload is a no-op returning current record", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByEmpIDAndMonthFn = func(ctx context.Context, empID, month string) (*attendance.Attendance, error) {
			return current, nil
		}
		deps.repo.updateFieldsFn = func(ctx context.Context, empID, month string, fields map[string]interface{}) error {
			t.Fatal("UpdateFields should not be called for an empty payload")
			return nil
		}

		resp, err := deps.service.Update(ctx, "EMP001", "2025-01", attendance.UpdateAttendanceRequest{})

		assert.NoError(t, err)
		assert.Equal(t, 20, resp.PresentDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.deleteByEmpIDAndMonthFn = func(ctx context.Context, empID, month string) (int64, error) {
			return 1, nil
		}

		err := deps.service.Delete(ctx, "EMP001", "2025-01")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.deleteByEmpIDAndMonthFn = func(ctx context.Context, empID, month string) (int64, error) {
			return 0, nil
		}

		err := deps.service.Delete(ctx, "EMP001", "2025-03")

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}
