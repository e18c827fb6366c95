package forum

import (
	"context"

	"github.com/trezcool/darasa/core"
)

// DefaultPostsLimit applies when no positive limit is requested.
const DefaultPostsLimit = 20

var (
	// errors
	ErrPostNotFound = core.NewNotFoundError("post not found")
)

type (
	Repository interface {
		QueryPosts(ctx context.Context, limit int) ([]Post, error)
		GetPostByID(ctx context.Context, id int) (Post, error)
		QueryComments(ctx context.Context, postID int) ([]Comment, error)
		CreatePost(ctx context.Context, np NewPost) (CreatePostResult, error)
		CreateComment(ctx context.Context, postID int, nc NewComment) (CreateCommentResult, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetPosts(ctx context.Context, filter PostsFilter) ([]Post, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultPostsLimit
	}
	return svc.repo.QueryPosts(ctx, limit)
}

func (svc *Service) GetPost(ctx context.Context, id int) (Post, error) {
	return svc.repo.GetPostByID(ctx, id)
}

func (svc *Service) GetComments(ctx context.Context, postID int) ([]Comment, error) {
	return svc.repo.QueryComments(ctx, postID)
}

func (svc *Service) CreatePost(ctx context.Context, np NewPost) (CreatePostResult, error) {
	np.Clean()
	return svc.repo.CreatePost(ctx, np)
}

func (svc *Service) CreateComment(ctx context.Context, postID int, nc NewComment) (CreateCommentResult, error) {
	nc.Clean()
	return svc.repo.CreateComment(ctx, postID, nc)
}
