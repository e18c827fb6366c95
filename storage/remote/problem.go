package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/problem"
)

type problemRepository struct {
	c *Client
}

var _ problem.Repository = (*problemRepository)(nil) // interface compliance check

func NewProblemRepository(c *Client) problem.Repository {
	return &problemRepository{c: c}
}

func (repo *problemRepository) QueryProblems(ctx context.Context, filter problem.Filter) ([]problem.Problem, error) {
	q := make(url.Values)
	if !core.IsAllOrEmpty(filter.Difficulty) {
		q.Set("difficulty", filter.Difficulty)
	}
	if !core.IsAllOrEmpty(filter.Topic) {
		q.Set("topic", filter.Topic)
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	probs := make([]problem.Problem, 0)
	err := repo.c.get(ctx, withQuery("/problems", q), &probs, nil)
	return probs, err
}

func (repo *problemRepository) GetProblemByID(ctx context.Context, id int) (problem.Problem, error) {
	var p problem.Problem
	err := repo.c.get(ctx, "/problems/"+strconv.Itoa(id), &p, problem.ErrNotFound)
	return p, err
}

func (repo *problemRepository) SubmitAnswer(ctx context.Context, problemID int, answer string) (problem.SubmitResult, error) {
	var res problem.SubmitResult
	err := repo.c.post(ctx, "/problems/"+strconv.Itoa(problemID)+"/submit", problem.Answer{Answer: answer}, &res)
	return res, err
}

func (repo *problemRepository) QueryHistory(ctx context.Context) (problem.History, error) {
	hist := problem.History{Attempts: make([]problem.Attempt, 0)}
	err := repo.c.get(ctx, "/problems/history", &hist, nil)
	return hist, err
}

func (repo *problemRepository) CreateProblem(ctx context.Context, np problem.NewProblem) (problem.CreateResult, error) {
	var res problem.CreateResult
	err := repo.c.post(ctx, "/problems", np, &res)
	return res, err
}
