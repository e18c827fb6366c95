package calendar

import (
	"context"
	"sort"
)

const dateLayout = "2006-01-02"

type (
	Repository interface {
		// QueryEvents returns events for the given range. Fixture sources ignore the range.
		QueryEvents(ctx context.Context, rng Range) ([]Event, error)
		CreateEvent(ctx context.Context, ne NewEvent) (CreateResult, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetEvents(ctx context.Context, rng Range) ([]Event, error) {
	return svc.repo.QueryEvents(ctx, rng)
}

func (svc *Service) GetEventsByDate(ctx context.Context, rng Range) ([]DayEvents, error) {
	events, err := svc.repo.QueryEvents(ctx, rng)
	if err != nil {
		return nil, err
	}
	return GroupByDate(events), nil
}

func (svc *Service) Create(ctx context.Context, ne NewEvent) (CreateResult, error) {
	ne.Clean()
	return svc.repo.CreateEvent(ctx, ne)
}

// GroupByDate buckets events by the UTC date of their StartTime.
// Buckets are sorted by date, events within a bucket by StartTime (stable).
func GroupByDate(events []Event) []DayEvents {
	idx := make(map[string]int)
	groups := make([]DayEvents, 0)
	for _, evt := range events {
		date := evt.StartTime.UTC().Format(dateLayout)
		i, ok := idx[date]
		if !ok {
			i = len(groups)
			idx[date] = i
			groups = append(groups, DayEvents{Date: date})
		}
		groups[i].Events = append(groups[i].Events, evt)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Date < groups[j].Date })
	for _, g := range groups {
		evts := g.Events
		sort.SliceStable(evts, func(i, j int) bool { return evts[i].StartTime.Before(evts[j].StartTime) })
	}
	return groups
}
