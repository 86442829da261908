package seed

import (
	"context"
	"time"

	"hr-payroll/internal/attendance"
	"hr-payroll/internal/employee"
	"hr-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InitializeResult struct {
	Message           string `json:"message"`
	Count             int64  `json:"count,omitempty"`
	Employees         int    `json:"employees,omitempty"`
	AttendanceRecords int    `json:"attendance_records,omitempty"`
}

type Service interface {
	Initialize(ctx context.Context) (InitializeResult, error)
}

type service struct {
	db         *gorm.DB
	employees  employee.Repository
	attendance attendance.Repository
	logger     *zap.Logger
}

func NewService(
	db *gorm.DB,
	employees employee.Repository,
	attendanceRepo attendance.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("seed.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed.service")
	}
	return &service{
		db:         db,
		employees:  employees,
		attendance: attendanceRepo,
		logger:     l,
	}
}

func (s *service) Initialize(ctx context.Context) (InitializeResult, error) {
	rid := contextutil.GetRequestID(ctx)

	count, err := s.employees.CountAll(ctx)
	if err != nil {
		return InitializeResult{}, err
	}
	if count > 0 {
		return InitializeResult{
			Message: "Sample data already exists",
			Count:   count,
		}, nil
	}

	now := time.Now().UTC()
	employees := sampleEmployees(now)
	attendanceRows := sampleAttendance(now)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		empRepo := s.employees.WithTx(tx)
		attRepo := s.attendance.WithTx(tx)

		for i := range employees {
			if err := empRepo.Create(ctx, &employees[i]); err != nil {
				return err
			}
		}
		for i := range attendanceRows {
			if err := attRepo.Create(ctx, &attendanceRows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("sample data initialization failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return InitializeResult{}, err
	}

	s.logger.Info("sample data initialized",
		zap.String("request_id", rid),
		zap.Int("employees", len(employees)),
		zap.Int("attendance_records", len(attendanceRows)),
	)
	return InitializeResult{
		Message:           "Sample data initialized successfully",
		Employees:         len(employees),
		AttendanceRecords: len(attendanceRows),
	}, nil
}
