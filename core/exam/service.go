package exam

import (
	"context"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound = core.NewNotFoundError("exam file not found")
)

type (
	Repository interface {
		QueryFiles(ctx context.Context, fileType string) ([]File, error)
		GetFileByID(ctx context.Context, id int) (File, error)
		UploadFile(ctx context.Context, nf NewFile) (UploadResult, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetFiles(ctx context.Context, filter Filter) ([]File, error) {
	return svc.repo.QueryFiles(ctx, filter.Type)
}

func (svc *Service) GetFileByID(ctx context.Context, id int) (File, error) {
	return svc.repo.GetFileByID(ctx, id)
}

func (svc *Service) Upload(ctx context.Context, nf NewFile) (UploadResult, error) {
	nf.Clean()
	return svc.repo.UploadFile(ctx, nf)
}
