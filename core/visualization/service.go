package visualization

import (
	"context"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound = core.NewNotFoundError("visualization not found")
)

type (
	Repository interface {
		QueryVisualizations(ctx context.Context, topic string) ([]Visualization, error)
		GetVisualizationByID(ctx context.Context, id int) (Visualization, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetVisualizations(ctx context.Context, filter Filter) ([]Visualization, error) {
	return svc.repo.QueryVisualizations(ctx, filter.Topic)
}

func (svc *Service) GetVisualization(ctx context.Context, id int) (Visualization, error) {
	return svc.repo.GetVisualizationByID(ctx, id)
}
