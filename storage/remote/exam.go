package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/exam"
)

type examRepository struct {
	c *Client
}

var _ exam.Repository = (*examRepository)(nil) // interface compliance check

func NewExamRepository(c *Client) exam.Repository {
	return &examRepository{c: c}
}

func (repo *examRepository) QueryFiles(ctx context.Context, fileType string) ([]exam.File, error) {
	q := make(url.Values)
	if !core.IsAllOrEmpty(fileType) {
		q.Set("type", fileType)
	}
	files := make([]exam.File, 0)
	err := repo.c.get(ctx, withQuery("/exams", q), &files, nil)
	return files, err
}

func (repo *examRepository) GetFileByID(ctx context.Context, id int) (exam.File, error) {
	var f exam.File
	err := repo.c.get(ctx, "/exams/"+strconv.Itoa(id), &f, exam.ErrNotFound)
	return f, err
}

func (repo *examRepository) UploadFile(ctx context.Context, nf exam.NewFile) (exam.UploadResult, error) {
	var res exam.UploadResult
	err := repo.c.post(ctx, "/exams", nf, &res)
	return res, err
}
