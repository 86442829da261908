package payroll

import (
	"context"
	"errors"

	payrollerrors "hr-payroll/internal/payroll/errors"
	"hr-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetCalculation(ctx context.Context, empID, month string) (Calculation, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetCalculation(
	ctx context.Context,
	empID, month string,
) (Calculation, error) {
	rid := contextutil.GetRequestID(ctx)

	emp, err := s.repo.FindEmployeePay(ctx, empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Calculation{}, payrollerrors.ErrEmployeeNotFound
		}
		return Calculation{}, err
	}

	att, err := s.repo.FindMonthAttendance(ctx, empID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Calculation{}, payrollerrors.ErrAttendanceNotFound
		}
		return Calculation{}, err
	}

	calc, err := Calculate(*emp, *att)
	if err != nil {
		s.logger.Warn("payroll calculation rejected",
			zap.String("request_id", rid),
			zap.String("emp_id", empID),
			zap.String("month", month),
			zap.Error(err),
		)
		return Calculation{}, err
	}

	s.logger.Info("payroll calculated",
		zap.String("request_id", rid),
		zap.String("emp_id", empID),
		zap.String("month", month),
		zap.Float64("net_salary", calc.NetSalary),
	)
	return calc, nil
}
