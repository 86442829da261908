package assistant

import (
	"context"

	"hr-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Generate(ctx context.Context, req AIRequest) AIResponse
}

type service struct {
	logger *zap.Logger
}

func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("assistant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assistant.service")
	}
	return &service{logger: l}
}

func (s *service) Generate(ctx context.Context, req AIRequest) AIResponse {
	body := Generate(req.RequestType, req.Context, req.AdditionalInfo)

	s.logger.Info("text generated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("request_type", req.RequestType),
		zap.Int("length", len(body)),
	)

	return AIResponse{
		RequestType:   req.RequestType,
		GeneratedText: body,
	}
}
