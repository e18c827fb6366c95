package visualization

import "encoding/json"

type Visualization struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	VisualizationType string `json:"visualizationType"`
	// DataPayload is opaque chart data, passed through untouched.
	DataPayload json.RawMessage `json:"dataPayload"`
	Topic       string          `json:"topic"`
}

type Filter struct {
	Topic string `query:"topic"`
}
