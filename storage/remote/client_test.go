package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/exam"
	"github.com/trezcool/darasa/core/forum"
	"github.com/trezcool/darasa/core/problem"
	"github.com/trezcool/darasa/core/user"
	logsvc "github.com/trezcool/darasa/services/logger"
)

type recorded struct {
	method string
	uri    string
	auth   string
	ctype  string
	body   string
}

// newUpstream serves canned JSON per request URI and records the last request.
func newUpstream(t *testing.T, routes map[string]func(w http.ResponseWriter)) (*Client, *recorded) {
	t.Helper()
	rec := new(recorded)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*rec = recorded{
			method: r.Method,
			uri:    r.URL.RequestURI(),
			auth:   r.Header.Get("Authorization"),
			ctype:  r.Header.Get("Content-Type"),
			body:   string(body),
		}
		if h, ok := routes[r.Method+" "+r.URL.RequestURI()]; ok {
			h(w)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(core.APIConfig{BaseURL: srv.URL + "/api/", Token: "s3cr3t", Timeout: time.Second}, logsvc.NewZap(zap.NewNop()))
	return c, rec
}

func jsonResponse(code int, v interface{}) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}
}

func TestClient_requests(t *testing.T) {
	c, rec := newUpstream(t, map[string]func(w http.ResponseWriter){
		"GET /api/problems?difficulty=easy&limit=2": jsonResponse(http.StatusOK, []problem.Problem{{ID: 1, Difficulty: "easy"}}),
		"POST /api/problems/3/submit":               jsonResponse(http.StatusOK, problem.SubmitResult{Success: true, Correct: true, Message: "ok"}),
	})
	ctx := context.Background()
	repo := NewProblemRepository(c)

	probs, err := repo.QueryProblems(ctx, problem.Filter{Difficulty: "easy", Topic: "all", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, probs, 1)
	assert.Equal(t, "GET", rec.method)
	assert.Equal(t, "Bearer s3cr3t", rec.auth)
	assert.Equal(t, "application/json", rec.ctype)

	res, err := repo.SubmitAnswer(ctx, 3, "42")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, "POST", rec.method)
	assert.JSONEq(t, `{"answer": "42"}`, rec.body)
}

func TestClient_errors(t *testing.T) {
	c, _ := newUpstream(t, map[string]func(w http.ResponseWriter){
		"GET /api/forum/posts?limit=20": jsonResponse(http.StatusInternalServerError, map[string]string{"message": "database is down"}),
		"GET /api/exams":                func(w http.ResponseWriter) { w.WriteHeader(http.StatusBadGateway) },
		"POST /api/auth/login":          jsonResponse(http.StatusUnauthorized, map[string]string{"error": "nope"}),
		"GET /api/problems/history":     func(w http.ResponseWriter) { _, _ = w.Write([]byte("not json")) },
	})
	ctx := context.Background()

	t.Run("message from body", func(t *testing.T) {
		_, err := NewForumRepository(c).QueryPosts(ctx, 20)
		require.Error(t, err)
		assert.Equal(t, "database is down", err.Error())
		assert.True(t, IsUpstreamError(err))
		assert.Equal(t, http.StatusInternalServerError, err.(*APIError).Status)
	})

	t.Run("default message", func(t *testing.T) {
		_, err := NewExamRepository(c).QueryFiles(ctx, "all")
		require.Error(t, err)
		assert.Equal(t, "API request failed with status 502", err.Error())

		_, err = NewUserRepository(c).Authenticate(ctx, user.Credentials{Email: "a@b.co", Password: "x"})
		require.Error(t, err)
		assert.Equal(t, "API request failed with status 401", err.Error())
	})

	t.Run("not found maps to domain error", func(t *testing.T) {
		_, err := NewForumRepository(c).GetPostByID(ctx, 5)
		assert.Equal(t, forum.ErrPostNotFound, err)

		_, err = NewExamRepository(c).GetFileByID(ctx, 5)
		assert.Equal(t, exam.ErrNotFound, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := NewProblemRepository(c).QueryHistory(ctx)
		require.Error(t, err)
		assert.False(t, IsUpstreamError(err))
	})
}

func TestClient_unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c := NewClient(core.APIConfig{BaseURL: baseURL, Timeout: time.Second}, logsvc.NewZap(zap.NewNop()))
	_, err := NewProblemRepository(c).GetProblemByID(context.Background(), 1)
	assert.Equal(t, ErrUnreachable, err)
	assert.True(t, IsUpstreamError(err))
}
