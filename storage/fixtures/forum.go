package fixtures

import (
	"context"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/forum"
)

type forumRepository struct {
	db *DB
}

var _ forum.Repository = (*forumRepository)(nil) // interface compliance check

func NewForumRepository(db *DB) forum.Repository {
	return &forumRepository{db: db}
}

func (repo *forumRepository) QueryPosts(ctx context.Context, limit int) ([]forum.Post, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	return first(repo.db.posts, limit), nil
}

func (repo *forumRepository) GetPostByID(ctx context.Context, id int) (forum.Post, error) {
	if err := repo.db.wait(ctx); err != nil {
		return forum.Post{}, err
	}
	for _, p := range repo.db.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return forum.Post{}, forum.ErrPostNotFound
}

// QueryComments returns the comments of a post. An unknown post has no comments.
func (repo *forumRepository) QueryComments(ctx context.Context, postID int) ([]forum.Comment, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	comments := make([]forum.Comment, 0)
	for _, c := range repo.db.comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (repo *forumRepository) CreatePost(ctx context.Context, _ forum.NewPost) (forum.CreatePostResult, error) {
	if err := repo.db.wait(ctx); err != nil {
		return forum.CreatePostResult{}, err
	}
	return forum.CreatePostResult{Success: true, PostID: core.AckID}, nil
}

func (repo *forumRepository) CreateComment(ctx context.Context, _ int, _ forum.NewComment) (forum.CreateCommentResult, error) {
	if err := repo.db.wait(ctx); err != nil {
		return forum.CreateCommentResult{}, err
	}
	return forum.CreateCommentResult{Success: true, CommentID: core.AckID}, nil
}
