package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/trezcool/darasa/core/forum"
)

type forumRepository struct {
	c *Client
}

var _ forum.Repository = (*forumRepository)(nil) // interface compliance check

func NewForumRepository(c *Client) forum.Repository {
	return &forumRepository{c: c}
}

func postPath(id int) string {
	return "/forum/posts/" + strconv.Itoa(id)
}

func (repo *forumRepository) QueryPosts(ctx context.Context, limit int) ([]forum.Post, error) {
	q := make(url.Values)
	q.Set("limit", strconv.Itoa(limit))
	posts := make([]forum.Post, 0)
	err := repo.c.get(ctx, withQuery("/forum/posts", q), &posts, nil)
	return posts, err
}

func (repo *forumRepository) GetPostByID(ctx context.Context, id int) (forum.Post, error) {
	var post forum.Post
	err := repo.c.get(ctx, postPath(id), &post, forum.ErrPostNotFound)
	return post, err
}

func (repo *forumRepository) QueryComments(ctx context.Context, postID int) ([]forum.Comment, error) {
	comments := make([]forum.Comment, 0)
	err := repo.c.get(ctx, postPath(postID)+"/comments", &comments, nil)
	return comments, err
}

func (repo *forumRepository) CreatePost(ctx context.Context, np forum.NewPost) (forum.CreatePostResult, error) {
	var res forum.CreatePostResult
	err := repo.c.post(ctx, "/forum/posts", np, &res)
	return res, err
}

func (repo *forumRepository) CreateComment(ctx context.Context, postID int, nc forum.NewComment) (forum.CreateCommentResult, error) {
	var res forum.CreateCommentResult
	err := repo.c.post(ctx, postPath(postID)+"/comments", nc, &res)
	return res, err
}
