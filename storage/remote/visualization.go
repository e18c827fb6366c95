package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/visualization"
)

type visualizationRepository struct {
	c *Client
}

var _ visualization.Repository = (*visualizationRepository)(nil) // interface compliance check

func NewVisualizationRepository(c *Client) visualization.Repository {
	return &visualizationRepository{c: c}
}

func (repo *visualizationRepository) QueryVisualizations(ctx context.Context, topic string) ([]visualization.Visualization, error) {
	q := make(url.Values)
	if !core.IsAllOrEmpty(topic) {
		q.Set("topic", topic)
	}
	vizs := make([]visualization.Visualization, 0)
	err := repo.c.get(ctx, withQuery("/visualizations", q), &vizs, nil)
	return vizs, err
}

func (repo *visualizationRepository) GetVisualizationByID(ctx context.Context, id int) (visualization.Visualization, error) {
	var viz visualization.Visualization
	err := repo.c.get(ctx, "/visualizations/"+strconv.Itoa(id), &viz, visualization.ErrNotFound)
	return viz, err
}
