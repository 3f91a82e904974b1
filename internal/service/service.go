package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/DeValentRT/Horario-Prototipo/internal/repository"
	"github.com/DeValentRT/Horario-Prototipo/pkg/redis"
)

// Service aggregates all services.
type Service struct {
	Planner PlannerService
	Export  ExportService
}

// NewService creates the Service aggregate. Loading the persisted planner
// state happens here, once, at startup.
func NewService(ctx context.Context, repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) (*Service, error) {
	plannerSvc, err := NewPlannerService(ctx, repo, rdb, logger)
	if err != nil {
		return nil, err
	}
	return &Service{
		Planner: plannerSvc,
		Export:  NewExportService(plannerSvc, logger),
	}, nil
}
