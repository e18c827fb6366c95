package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	. "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/problem"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/storage/database"
	"github.com/trezcool/darasa/tests"
)

var (
	app      *Server
	mode     *core.Mode
	upstream *httptest.Server
	db       *database.Repositories

	errInvalidToken = httpErr{Error: "invalid or expired jwt"}

	liveProblem = problem.Problem{ID: 42, Title: "Live problem", Difficulty: "hard", Topic: "Logic", PointValue: 50}
	liveUser    = user.User{ID: 77, Username: "live", Email: "live@example.com", Role: user.RoleTeacher}
)

// liveRoutes is what the fake upstream API answers in live mode, keyed by "METHOD /path?query".
var liveRoutes = map[string]func(w http.ResponseWriter){
	"GET /api/problems":   writeJSON(http.StatusOK, []problem.Problem{liveProblem}),
	"GET /api/problems/7": writeJSON(http.StatusInternalServerError, map[string]string{"message": "upstream exploded"}),
	"GET /api/users/me":   writeJSON(http.StatusOK, liveUser),
}

func writeJSON(code int, v interface{}) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}
}

func TestMain(m *testing.M) {
	upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := liveRoutes[r.Method+" "+r.URL.RequestURI()]; ok {
			h(w)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	// set up repos & server
	conf := testutil.Config(upstream.URL + "/api")
	mode = core.NewMode(true)
	db = testutil.OpenRepos(conf, mode)
	app = testutil.NewServer(conf, mode)

	// run tests
	code := m.Run()

	// clean up
	upstream.Close()
	os.Exit(code)
}
