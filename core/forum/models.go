package forum

import (
	"time"

	"github.com/trezcool/darasa/core"
)

type Post struct {
	ID         int       `json:"id"`
	AuthorID   int       `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Comment struct {
	ID         int       `json:"id"`
	PostID     int       `json:"postId"`
	AuthorID   int       `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type PostsFilter struct {
	Limit int `query:"limit"`
}

// NewPost contains information needed to create a new Post.
type NewPost struct {
	Title   string `json:"title" validate:"required,notblank"`
	Content string `json:"content" validate:"required,notblank"`
}

func (np *NewPost) Clean() {
	np.Title = core.CleanString(np.Title)
	np.Content = core.CleanString(np.Content)
}

// NewComment contains information needed to comment on a Post.
type NewComment struct {
	Content string `json:"content" validate:"required,notblank"`
}

func (nc *NewComment) Clean() {
	nc.Content = core.CleanString(nc.Content)
}

type CreatePostResult struct {
	Success bool `json:"success"`
	PostID  int  `json:"postId"`
}

type CreateCommentResult struct {
	Success   bool `json:"success"`
	CommentID int  `json:"commentId"`
}
