package fixtures

import (
	"context"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/problem"
)

type problemRepository struct {
	db *DB
}

var _ problem.Repository = (*problemRepository)(nil) // interface compliance check

func NewProblemRepository(db *DB) problem.Repository {
	return &problemRepository{db: db}
}

func (repo *problemRepository) QueryProblems(ctx context.Context, filter problem.Filter) ([]problem.Problem, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	return filter.Apply(repo.db.problems), nil
}

func (repo *problemRepository) GetProblemByID(ctx context.Context, id int) (problem.Problem, error) {
	if err := repo.db.wait(ctx); err != nil {
		return problem.Problem{}, err
	}
	for _, p := range repo.db.problems {
		if p.ID == id {
			return p, nil
		}
	}
	return problem.Problem{}, problem.ErrNotFound
}

// SubmitAnswer grades without looking the problem up, so unknown ids are graded too.
func (repo *problemRepository) SubmitAnswer(ctx context.Context, _ int, answer string) (problem.SubmitResult, error) {
	if err := repo.db.wait(ctx); err != nil {
		return problem.SubmitResult{}, err
	}
	return problem.Grade(answer), nil
}

func (repo *problemRepository) QueryHistory(ctx context.Context) (problem.History, error) {
	if err := repo.db.wait(ctx); err != nil {
		return problem.History{}, err
	}
	return problem.History{Attempts: first(repo.db.attempts, len(repo.db.attempts))}, nil
}

func (repo *problemRepository) CreateProblem(ctx context.Context, _ problem.NewProblem) (problem.CreateResult, error) {
	if err := repo.db.wait(ctx); err != nil {
		return problem.CreateResult{}, err
	}
	return problem.CreateResult{Success: true, ProblemID: core.AckID}, nil
}
