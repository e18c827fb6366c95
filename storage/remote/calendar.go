package remote

import (
	"context"
	"net/url"
	"time"

	"github.com/trezcool/darasa/core/calendar"
)

type eventRepository struct {
	c *Client
}

var _ calendar.Repository = (*eventRepository)(nil) // interface compliance check

func NewEventRepository(c *Client) calendar.Repository {
	return &eventRepository{c: c}
}

func (repo *eventRepository) QueryEvents(ctx context.Context, rng calendar.Range) ([]calendar.Event, error) {
	q := make(url.Values)
	if !rng.Start.IsZero() {
		q.Set("start", rng.Start.UTC().Format(time.RFC3339))
	}
	if !rng.End.IsZero() {
		q.Set("end", rng.End.UTC().Format(time.RFC3339))
	}
	events := make([]calendar.Event, 0)
	err := repo.c.get(ctx, withQuery("/events", q), &events, nil)
	return events, err
}

func (repo *eventRepository) CreateEvent(ctx context.Context, ne calendar.NewEvent) (calendar.CreateResult, error) {
	var res calendar.CreateResult
	err := repo.c.post(ctx, "/events", ne, &res)
	return res, err
}
