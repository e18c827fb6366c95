package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/calendar"
)

func Test_eventApi(t *testing.T) {
	events, err := db.Events.QueryEvents(context.Background(), calendar.Range{})
	if err != nil {
		t.Fatalf("QueryEvents() failed: %v", err)
	}
	lecture, exam := events[0], events[1]

	newEvent := []byte(`{
		"title": "Geometry Workshop",
		"description": "Hands-on constructions",
		"eventType": "workshop",
		"startTime": "2024-03-12T09:00:00Z",
		"endTime": "2024-03-12T11:00:00Z"
	}`)

	tests := []httpTest{
		{name: "list", path: "/api/events", wantData: marchallList(t, lecture, exam)},
		{name: "range is ignored", path: "/api/events?start=2020-01-01&end=2020-01-02", wantData: marchallList(t, lecture, exam)},
		{
			name: "invalid range", path: "/api/events?start=yesterday", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"start": "must be an RFC3339 timestamp or a YYYY-MM-DD date"}),
		},
		{
			name: "by date", path: "/api/events/by-date",
			wantData: marchallObj(t, []calendar.DayEvents{
				{Date: "2024-03-11", Events: []calendar.Event{lecture}},
				{Date: "2024-03-12", Events: []calendar.Event{exam}},
			}),
		},
		{
			name: "create", method: http.MethodPost, path: "/api/events", body: newEvent,
			wantCode: http.StatusCreated, wantData: marchallObj(t, calendar.CreateResult{Success: true, EventID: core.AckID}),
		},
		{
			name: "create invalid", method: http.MethodPost, path: "/api/events",
			body:     []byte(`{"title": "Party", "eventType": "party", "startTime": "2024-03-12T09:00:00Z", "endTime": "2024-03-12T11:00:00Z"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"eventType": "must be one of: lecture, exam, workshop, other"}),
		},
		{name: "list after create", path: "/api/events", wantData: marchallList(t, lecture, exam)},
	}
	runHTTPTests(t, tests)
}
