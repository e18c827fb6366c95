package exam

import (
	"time"

	"github.com/trezcool/darasa/core"
)

// File types
const (
	TypeExam      = "exam"
	TypeMidterm   = "midterm"
	TypeFinal     = "final"
	TypeInduction = "induction"
)

// File is an archived exam paper.
type File struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Year       int       `json:"year"`
	Type       string    `json:"type"`
	Semester   string    `json:"semester,omitempty"`
	FileURL    string    `json:"fileUrl"`
	UploadDate time.Time `json:"uploadDate"`
}

type Filter struct {
	Type string `query:"type"`
}

// NewFile contains information needed to upload an exam File.
type NewFile struct {
	Title    string `json:"title" validate:"required,notblank"`
	Year     int    `json:"year" validate:"required,gte=1900,lte=2100"`
	Type     string `json:"type" validate:"required,oneof=exam midterm final induction"`
	Semester string `json:"semester" validate:"omitempty,oneof=A B"`
	FileURL  string `json:"fileUrl" validate:"required,notblank"`
}

func (nf *NewFile) Clean() {
	nf.Title = core.CleanString(nf.Title)
	nf.Type = core.CleanString(nf.Type, true /* lower */)
	nf.Semester = core.CleanString(nf.Semester)
	nf.FileURL = core.CleanString(nf.FileURL)
}

type UploadResult struct {
	Success bool `json:"success"`
	FileID  int  `json:"fileId"`
}
