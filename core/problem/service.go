package problem

import (
	"context"

	"github.com/trezcool/darasa/core"
)

const (
	// AcceptedAnswer is the single answer graded as correct, whatever the problem.
	// TODO: grade against each problem's stored correctAnswer once problems are persisted.
	AcceptedAnswer = "5"

	msgCorrect   = "Correct answer!"
	msgIncorrect = "Incorrect answer. Try again."
)

var (
	// errors
	ErrNotFound = core.NewNotFoundError("problem not found")
)

type (
	Repository interface {
		QueryProblems(ctx context.Context, filter Filter) ([]Problem, error)
		GetProblemByID(ctx context.Context, id int) (Problem, error)
		SubmitAnswer(ctx context.Context, problemID int, answer string) (SubmitResult, error)
		QueryHistory(ctx context.Context) (History, error)
		CreateProblem(ctx context.Context, np NewProblem) (CreateResult, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetProblems(ctx context.Context, filter Filter) ([]Problem, error) {
	return svc.repo.QueryProblems(ctx, filter)
}

func (svc *Service) GetProblem(ctx context.Context, id int) (Problem, error) {
	return svc.repo.GetProblemByID(ctx, id)
}

func (svc *Service) SubmitAnswer(ctx context.Context, problemID int, answer string) (SubmitResult, error) {
	return svc.repo.SubmitAnswer(ctx, problemID, answer)
}

func (svc *Service) GetHistory(ctx context.Context) (History, error) {
	return svc.repo.QueryHistory(ctx)
}

func (svc *Service) Create(ctx context.Context, np NewProblem) (CreateResult, error) {
	np.Clean()
	return svc.repo.CreateProblem(ctx, np)
}

// Grade checks an answer. The problem id does not take part in grading.
func Grade(answer string) SubmitResult {
	if answer == AcceptedAnswer {
		return SubmitResult{Success: true, Correct: true, Message: msgCorrect}
	}
	return SubmitResult{Success: true, Correct: false, Message: msgIncorrect}
}

// Apply filters problems and truncates the result when Limit is positive.
func (f Filter) Apply(problems []Problem) []Problem {
	out := make([]Problem, 0, len(problems))
	for _, p := range problems {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
