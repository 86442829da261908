package employee

import (
	"context"
	"time"

	"hr-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByEmpID(ctx context.Context, empID string) (EmployeeResponse, error)
	Update(ctx context.Context, empID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, empID string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	empl := &Employee{
		ID:          uuid.New(),
		EmpID:       req.EmpID,
		Name:        req.Name,
		Department:  req.Department,
		Designation: req.Designation,
		JoinDate:    req.JoinDate,
		BasicSalary: req.BasicSalary,
		HRA:         req.HRA,
		Allowance:   req.Allowance,
		PFPercent:   DefaultPFPercent,
		ESIPercent:  DefaultESIPercent,
		PT:          DefaultPT,
		CreatedAt:   time.Now().UTC(),
	}
	if req.PFPercent != nil {
		empl.PFPercent = *req.PFPercent
	}
	if req.ESIPercent != nil {
		empl.ESIPercent = *req.ESIPercent
	}
	if req.PT != nil {
		empl.PT = *req.PT
	}

	// Insert tunggal; unique index uq_employees_emp_id yang menolak duplikat,
	// bukan pola check-then-insert.
	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Warn("create employee persist failed",
			zap.String("request_id", rid),
			zap.String("emp_id", req.EmpID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("emp_id", empl.EmpID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetByEmpID(
	ctx context.Context,
	empID string,
) (EmployeeResponse, error) {
	empl, err := s.repo.FindByEmpID(ctx, empID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	empID string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	var updated *Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByEmpID(ctx, empID); err != nil {
			return mapRepositoryError(err)
		}

		// Payload kosong adalah no-op; record lama tetap dikembalikan.
		if fields := req.Fields(); len(fields) > 0 {
			if err := qtx.UpdateFields(ctx, empID, fields); err != nil {
				return mapRepositoryError(err)
			}
		}

		current, err := qtx.FindByEmpID(ctx, empID)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = current
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("emp_id", empID),
	)
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, empID string) error {
	rid := contextutil.GetRequestID(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		rows, err := qtx.DeleteByEmpID(ctx, empID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if rows == 0 {
			return mapRepositoryError(gorm.ErrRecordNotFound)
		}

		// Cascade dalam transaksi yang sama supaya tidak ada attendance yatim.
		return qtx.DeleteAttendanceByEmpID(ctx, empID)
	})
	if err != nil {
		s.logger.Warn("delete employee failed",
			zap.String("request_id", rid),
			zap.String("emp_id", empID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("emp_id", empID),
	)
	return nil
}
