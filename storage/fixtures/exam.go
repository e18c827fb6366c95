package fixtures

import (
	"context"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/exam"
)

type examRepository struct {
	db *DB
}

var _ exam.Repository = (*examRepository)(nil) // interface compliance check

func NewExamRepository(db *DB) exam.Repository {
	return &examRepository{db: db}
}

func (repo *examRepository) QueryFiles(ctx context.Context, fileType string) ([]exam.File, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	files := make([]exam.File, 0, len(repo.db.examFiles))
	for _, f := range repo.db.examFiles {
		if core.IsAllOrEmpty(fileType) || f.Type == fileType {
			files = append(files, f)
		}
	}
	return files, nil
}

func (repo *examRepository) GetFileByID(ctx context.Context, id int) (exam.File, error) {
	if err := repo.db.wait(ctx); err != nil {
		return exam.File{}, err
	}
	for _, f := range repo.db.examFiles {
		if f.ID == id {
			return f, nil
		}
	}
	return exam.File{}, exam.ErrNotFound
}

func (repo *examRepository) UploadFile(ctx context.Context, _ exam.NewFile) (exam.UploadResult, error) {
	if err := repo.db.wait(ctx); err != nil {
		return exam.UploadResult{}, err
	}
	return exam.UploadResult{Success: true, FileID: core.AckID}, nil
}
