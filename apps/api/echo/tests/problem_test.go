package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/problem"
)

func Test_problemApi(t *testing.T) {
	probs, err := db.Problems.QueryProblems(context.Background(), problem.Filter{})
	if err != nil {
		t.Fatalf("QueryProblems() failed: %v", err)
	}
	p1, p2, p3 := probs[0], probs[1], probs[2]
	hist, _ := db.Problems.QueryHistory(context.Background())

	newProblem := []byte(`{"title": "Solve 3x = 9", "difficulty": "easy", "topic": "Algebra", "pointValue": 5, "correctAnswer": "3"}`)

	tests := []httpTest{
		{name: "list", path: "/api/problems", wantData: marchallList(t, p1, p2, p3)},
		{name: "difficulty", path: "/api/problems?difficulty=easy", wantData: marchallList(t, p1)},
		{name: "all passthrough", path: "/api/problems?difficulty=all&topic=Geometry", wantData: marchallList(t, p3)},
		{name: "unknown difficulty", path: "/api/problems?difficulty=impossible", wantData: marchallList(t)},
		{name: "unknown topic", path: "/api/problems?topic=Chemistry", wantData: marchallList(t)},
		{name: "difficulty is matched exactly", path: "/api/problems?difficulty=%20easy", wantData: marchallList(t)},
		{name: "topic is matched exactly", path: "/api/problems?topic=algebra", wantData: marchallList(t)},
		{name: "limit", path: "/api/problems?limit=2", wantData: marchallList(t, p1, p2)},
		{name: "invalid limit", path: "/api/problems?limit=two", wantCode: http.StatusBadRequest},
		{name: "retrieve", path: "/api/problems/2", wantData: marchallObj(t, p2)},
		{
			name: "retrieve unknown", path: "/api/problems/99", wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "problem not found"}),
		},
		{
			name: "retrieve invalid id", path: "/api/problems/abc", wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{name: "history", path: "/api/problems/history", wantData: marchallObj(t, hist)},
		{
			name: "submit correct", method: http.MethodPost, path: "/api/problems/1/submit", body: []byte(`{"answer": "5"}`),
			wantData: marchallObj(t, problem.SubmitResult{Success: true, Correct: true, Message: "Correct answer!"}),
		},
		{
			name: "submit correct to unknown problem", method: http.MethodPost, path: "/api/problems/999/submit", body: []byte(`{"answer": "5"}`),
			wantData: marchallObj(t, problem.SubmitResult{Success: true, Correct: true, Message: "Correct answer!"}),
		},
		{
			name: "submit incorrect", method: http.MethodPost, path: "/api/problems/3/submit", body: []byte(`{"answer": "x = 5"}`),
			wantData: marchallObj(t, problem.SubmitResult{Success: true, Correct: false, Message: "Incorrect answer. Try again."}),
		},
		{
			name: "submit without answer", method: http.MethodPost, path: "/api/problems/1/submit", body: []byte(`{}`),
			wantData: marchallObj(t, problem.SubmitResult{Success: true, Correct: false, Message: "Incorrect answer. Try again."}),
		},
		{
			name: "create", method: http.MethodPost, path: "/api/problems", body: newProblem,
			wantCode: http.StatusCreated, wantData: marchallObj(t, problem.CreateResult{Success: true, ProblemID: core.AckID}),
		},
		{
			name: "create invalid", method: http.MethodPost, path: "/api/problems",
			body:     []byte(`{"title": "  ", "difficulty": "extreme", "topic": "Algebra", "correctAnswer": "3"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"title":      "this field is required",
				"difficulty": "must be one of: easy, medium, hard",
			}),
		},
		// creates are not stored
		{name: "list after create", path: "/api/problems", wantData: marchallList(t, p1, p2, p3)},
	}
	runHTTPTests(t, tests)
}
