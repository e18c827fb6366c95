package fixtures

import (
	"context"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/calendar"
)

type eventRepository struct {
	db *DB
}

var _ calendar.Repository = (*eventRepository)(nil) // interface compliance check

func NewEventRepository(db *DB) calendar.Repository {
	return &eventRepository{db: db}
}

// QueryEvents returns every event; the range is not applied to fixtures.
func (repo *eventRepository) QueryEvents(ctx context.Context, _ calendar.Range) ([]calendar.Event, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	return first(repo.db.events, len(repo.db.events)), nil
}

func (repo *eventRepository) CreateEvent(ctx context.Context, _ calendar.NewEvent) (calendar.CreateResult, error) {
	if err := repo.db.wait(ctx); err != nil {
		return calendar.CreateResult{}, err
	}
	return calendar.CreateResult{Success: true, EventID: core.AckID}, nil
}
