package database

import (
	"context"

	"github.com/trezcool/darasa/core/calendar"
	"github.com/trezcool/darasa/core/exam"
	"github.com/trezcool/darasa/core/forum"
	"github.com/trezcool/darasa/core/leaderboard"
	"github.com/trezcool/darasa/core/problem"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/core/visualization"
)

type userRepository struct{ switcher[user.Repository] }

var _ user.Repository = (*userRepository)(nil)

func (r *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	return r.repo().QueryAllUsers(ctx)
}

func (r *userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	return r.repo().GetUserByID(ctx, id)
}

func (r *userRepository) CurrentUser(ctx context.Context) (user.User, error) {
	return r.repo().CurrentUser(ctx)
}

func (r *userRepository) Register(ctx context.Context, nu user.NewUser) (user.RegisterResult, error) {
	return r.repo().Register(ctx, nu)
}

func (r *userRepository) Authenticate(ctx context.Context, creds user.Credentials) (user.User, error) {
	return r.repo().Authenticate(ctx, creds)
}

type eventRepository struct{ switcher[calendar.Repository] }

var _ calendar.Repository = (*eventRepository)(nil)

func (r *eventRepository) QueryEvents(ctx context.Context, rng calendar.Range) ([]calendar.Event, error) {
	return r.repo().QueryEvents(ctx, rng)
}

func (r *eventRepository) CreateEvent(ctx context.Context, ne calendar.NewEvent) (calendar.CreateResult, error) {
	return r.repo().CreateEvent(ctx, ne)
}

type problemRepository struct{ switcher[problem.Repository] }

var _ problem.Repository = (*problemRepository)(nil)

func (r *problemRepository) QueryProblems(ctx context.Context, filter problem.Filter) ([]problem.Problem, error) {
	return r.repo().QueryProblems(ctx, filter)
}

func (r *problemRepository) GetProblemByID(ctx context.Context, id int) (problem.Problem, error) {
	return r.repo().GetProblemByID(ctx, id)
}

func (r *problemRepository) SubmitAnswer(ctx context.Context, problemID int, answer string) (problem.SubmitResult, error) {
	return r.repo().SubmitAnswer(ctx, problemID, answer)
}

func (r *problemRepository) QueryHistory(ctx context.Context) (problem.History, error) {
	return r.repo().QueryHistory(ctx)
}

func (r *problemRepository) CreateProblem(ctx context.Context, np problem.NewProblem) (problem.CreateResult, error) {
	return r.repo().CreateProblem(ctx, np)
}

type forumRepository struct{ switcher[forum.Repository] }

var _ forum.Repository = (*forumRepository)(nil)

func (r *forumRepository) QueryPosts(ctx context.Context, limit int) ([]forum.Post, error) {
	return r.repo().QueryPosts(ctx, limit)
}

func (r *forumRepository) GetPostByID(ctx context.Context, id int) (forum.Post, error) {
	return r.repo().GetPostByID(ctx, id)
}

func (r *forumRepository) QueryComments(ctx context.Context, postID int) ([]forum.Comment, error) {
	return r.repo().QueryComments(ctx, postID)
}

func (r *forumRepository) CreatePost(ctx context.Context, np forum.NewPost) (forum.CreatePostResult, error) {
	return r.repo().CreatePost(ctx, np)
}

func (r *forumRepository) CreateComment(ctx context.Context, postID int, nc forum.NewComment) (forum.CreateCommentResult, error) {
	return r.repo().CreateComment(ctx, postID, nc)
}

type leaderboardRepository struct{ switcher[leaderboard.Repository] }

var _ leaderboard.Repository = (*leaderboardRepository)(nil)

func (r *leaderboardRepository) QueryLeaderboard(ctx context.Context, limit int) (leaderboard.Board, error) {
	return r.repo().QueryLeaderboard(ctx, limit)
}

func (r *leaderboardRepository) GetEntryByUserID(ctx context.Context, userID int) (leaderboard.Entry, error) {
	return r.repo().GetEntryByUserID(ctx, userID)
}

type visualizationRepository struct{ switcher[visualization.Repository] }

var _ visualization.Repository = (*visualizationRepository)(nil)

func (r *visualizationRepository) QueryVisualizations(ctx context.Context, topic string) ([]visualization.Visualization, error) {
	return r.repo().QueryVisualizations(ctx, topic)
}

func (r *visualizationRepository) GetVisualizationByID(ctx context.Context, id int) (visualization.Visualization, error) {
	return r.repo().GetVisualizationByID(ctx, id)
}

type examRepository struct{ switcher[exam.Repository] }

var _ exam.Repository = (*examRepository)(nil)

func (r *examRepository) QueryFiles(ctx context.Context, fileType string) ([]exam.File, error) {
	return r.repo().QueryFiles(ctx, fileType)
}

func (r *examRepository) GetFileByID(ctx context.Context, id int) (exam.File, error) {
	return r.repo().GetFileByID(ctx, id)
}

func (r *examRepository) UploadFile(ctx context.Context, nf exam.NewFile) (exam.UploadResult, error) {
	return r.repo().UploadFile(ctx, nf)
}
