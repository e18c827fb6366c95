package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/forum"
)

type forumApi struct {
	svc      *forum.Service
	validate *validator.Validate
}

func registerForumAPI(g *echo.Group, svc *forum.Service, validate *validator.Validate) {
	api := forumApi{svc: svc, validate: validate}

	pg := g.Group("/forum/posts")
	pg.GET("", api.queryPosts)
	pg.POST("", api.createPost)
	pg.GET("/:id", api.retrievePost)
	pg.GET("/:id/comments", api.queryComments)
	pg.POST("/:id/comments", api.createComment)
}

// Handlers

func (api *forumApi) queryPosts(ctx echo.Context) error {
	var filter forum.PostsFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to forum.PostsFilter")
	}
	posts, err := api.svc.GetPosts(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying posts")
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *forumApi) retrievePost(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}
	post, err := api.svc.GetPost(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding post by ID")
	}
	return ctx.JSON(http.StatusOK, post)
}

func (api *forumApi) queryComments(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}
	comments, err := api.svc.GetComments(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying comments")
	}
	return ctx.JSON(http.StatusOK, comments)
}

func (api *forumApi) createPost(ctx echo.Context) error {
	var data forum.NewPost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPost")
	}
	data.Clean()
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	res, err := api.svc.CreatePost(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating post")
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (api *forumApi) createComment(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}
	var data forum.NewComment
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewComment")
	}
	data.Clean()
	if err = api.validate.Struct(data); err != nil {
		return err
	}

	res, err := api.svc.CreateComment(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "creating comment")
	}
	return ctx.JSON(http.StatusCreated, res)
}
