package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core/problem"
)

func setMock(t *testing.T, mock bool) {
	t.Helper()
	body := []byte(`{"mock": false}`)
	if mock {
		body = []byte(`{"mock": true}`)
	}
	req, rec := newRequest(http.MethodPost, "/api/admin/mode", body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func Test_adminApi(t *testing.T) {
	tests := []httpTest{
		{
			name: "status in mock mode", path: "/api/status",
			wantData: marchallObj(t, StatusResponse{Status: "ok", ModeResponse: ModeResponse{Mock: true, Mode: "mock"}, Banner: "Demo Mode Active"}),
		},
		{name: "get mode", path: "/api/admin/mode", wantData: marchallObj(t, ModeResponse{Mock: true, Mode: "mock"})},
		{
			name: "set mode without value", method: http.MethodPost, path: "/api/admin/mode", body: []byte(`{}`),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"mock": "this field is required"}),
		},
		{
			name: "set mode to mock", method: http.MethodPost, path: "/api/admin/mode", body: []byte(`{"mock": true}`),
			wantData: marchallObj(t, ModeResponse{Mock: true, Mode: "mock"}),
		},
	}
	runHTTPTests(t, tests)
}

func Test_liveMode(t *testing.T) {
	setMock(t, false)
	t.Cleanup(func() { setMock(t, true) })
	require.False(t, mode.IsMock())

	tests := []httpTest{
		{
			name: "status in live mode", path: "/api/status",
			wantData: marchallObj(t, StatusResponse{Status: "ok", ModeResponse: ModeResponse{Mock: false, Mode: "live"}}),
		},
		{name: "problems come from the API", path: "/api/problems", wantData: marchallList(t, liveProblem)},
		{
			name: "upstream failure", path: "/api/problems/7", wantCode: http.StatusBadGateway,
			wantData: marchallObj(t, httpErr{Error: "upstream exploded"}),
		},
		{
			name: "upstream not found", path: "/api/problems/8", wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "problem not found"}),
		},
		{name: "anonymous session user", path: "/api/users/me", wantData: marchallObj(t, liveUser)},
		{
			name: "unmapped endpoint", path: "/api/forum/posts", wantCode: http.StatusBadGateway,
			wantData: marchallObj(t, httpErr{Error: "API request failed with status 404"}),
		},
	}
	runHTTPTests(t, tests)

	t.Run("back to mock", func(t *testing.T) {
		setMock(t, true)
		probs, err := db.Problems.QueryProblems(context.Background(), problem.Filter{})
		require.NoError(t, err)
		assert.Len(t, probs, 3)
	})
}
