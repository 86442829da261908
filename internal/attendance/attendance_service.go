package attendance

import (
	"context"
	"time"

	attendanceerrors "hr-payroll/internal/attendance/errors"
	"hr-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetByEmpID(ctx context.Context, empID string) ([]AttendanceResponse, error)
	GetByMonth(ctx context.Context, empID, month string) (AttendanceResponse, error)
	Update(ctx context.Context, empID, month string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, empID, month string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateAttendanceRequest,
) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	att := &Attendance{
		ID:               uuid.New(),
		EmpID:            req.EmpID,
		Month:            req.Month,
		TotalWorkingDays: req.TotalWorkingDays,
		PresentDays:      req.PresentDays,
		LeaveDays:        req.LeaveDays,
		LOPDays:          req.LOPDays,
		CreatedAt:        time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.EmployeeExists(ctx, req.EmpID)
		if err != nil {
			return err
		}
		if !exists {
			return attendanceerrors.ErrEmployeeNotFound
		}

		// Duplikasi (emp_id, month) ditolak oleh unique index, bukan pre-check.
		return mapRepositoryError(qtx.Create(ctx, att))
	})
	if err != nil {
		s.logger.Warn("create attendance failed",
			zap.String("request_id", rid),
			zap.String("emp_id", req.EmpID),
			zap.String("month", req.Month),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	s.logger.Info("create attendance success",
		zap.String("request_id", rid),
		zap.String("emp_id", att.EmpID),
		zap.String("month", att.Month),
	)
	return mapToResponse(*att), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByEmpID(ctx context.Context, empID string) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindByEmpID(ctx, empID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByMonth(
	ctx context.Context,
	empID, month string,
) (AttendanceResponse, error) {
	att, err := s.repo.FindByEmpIDAndMonth(ctx, empID, month)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*att), nil
}

func (s *service) Update(
	ctx context.Context,
	empID, month string,
	req UpdateAttendanceRequest,
) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	var updated *Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByEmpIDAndMonth(ctx, empID, month); err != nil {
			return mapRepositoryError(err)
		}

		// Payload kosong adalah no-op; record lama tetap dikembalikan.
		if fields := req.Fields(); len(fields) > 0 {
			if err := qtx.UpdateFields(ctx, empID, month, fields); err != nil {
				return mapRepositoryError(err)
			}
		}

		current, err := qtx.FindByEmpIDAndMonth(ctx, empID, month)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = current
		return nil
	})
	if err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("update attendance success",
		zap.String("request_id", rid),
		zap.String("emp_id", empID),
		zap.String("month", month),
	)
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, empID, month string) error {
	rows, err := s.repo.DeleteByEmpIDAndMonth(ctx, empID, month)
	if err != nil {
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return attendanceerrors.ErrAttendanceNotFound
	}

	s.logger.Info("delete attendance success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("emp_id", empID),
		zap.String("month", month),
	)
	return nil
}
