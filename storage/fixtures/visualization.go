package fixtures

import (
	"context"
	"encoding/json"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/visualization"
)

type visualizationRepository struct {
	db *DB
}

var _ visualization.Repository = (*visualizationRepository)(nil) // interface compliance check

func NewVisualizationRepository(db *DB) visualization.Repository {
	return &visualizationRepository{db: db}
}

func (repo *visualizationRepository) QueryVisualizations(ctx context.Context, topic string) ([]visualization.Visualization, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	vizs := make([]visualization.Visualization, 0, len(repo.db.visualizations))
	for _, v := range repo.db.visualizations {
		if core.IsAllOrEmpty(topic) || v.Topic == topic {
			vizs = append(vizs, clonePayload(v))
		}
	}
	return vizs, nil
}

func (repo *visualizationRepository) GetVisualizationByID(ctx context.Context, id int) (visualization.Visualization, error) {
	if err := repo.db.wait(ctx); err != nil {
		return visualization.Visualization{}, err
	}
	for _, v := range repo.db.visualizations {
		if v.ID == id {
			return clonePayload(v), nil
		}
	}
	return visualization.Visualization{}, visualization.ErrNotFound
}

// clonePayload detaches the payload bytes from the fixture table.
func clonePayload(v visualization.Visualization) visualization.Visualization {
	v.DataPayload = append(json.RawMessage(nil), v.DataPayload...)
	return v
}
