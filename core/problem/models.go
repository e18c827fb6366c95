package problem

import (
	"time"

	"github.com/trezcool/darasa/core"
)

// Difficulties
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Problem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Topic       string `json:"topic"`
	PointValue  int    `json:"pointValue"`
}

// Filter narrows a problem listing. Empty or "all" values match everything.
type Filter struct {
	Difficulty string `query:"difficulty"`
	Topic      string `query:"topic"`
	Limit      int    `query:"limit"`
}

// Match reports whether p passes the difficulty and topic filters.
func (f Filter) Match(p Problem) bool {
	if !core.IsAllOrEmpty(f.Difficulty) && p.Difficulty != f.Difficulty {
		return false
	}
	if !core.IsAllOrEmpty(f.Topic) && p.Topic != f.Topic {
		return false
	}
	return true
}

// NewProblem contains information needed to create a new Problem.
type NewProblem struct {
	Title         string `json:"title" validate:"required,notblank"`
	Description   string `json:"description"`
	Difficulty    string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Topic         string `json:"topic" validate:"required,notblank"`
	PointValue    int    `json:"pointValue" validate:"gte=0"`
	CorrectAnswer string `json:"correctAnswer" validate:"required,notblank"`
}

func (np *NewProblem) Clean() {
	np.Title = core.CleanString(np.Title)
	np.Description = core.CleanString(np.Description)
	np.Difficulty = core.CleanString(np.Difficulty, true /* lower */)
	np.Topic = core.CleanString(np.Topic)
	np.CorrectAnswer = core.CleanString(np.CorrectAnswer)
}

type CreateResult struct {
	Success   bool `json:"success"`
	ProblemID int  `json:"problemId"`
}

type Answer struct {
	Answer string `json:"answer"`
}

type SubmitResult struct {
	Success bool   `json:"success"`
	Correct bool   `json:"correct"`
	Message string `json:"message"`
}

// Attempt is a past answer submission.
type Attempt struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Difficulty string    `json:"difficulty"`
	Correct    bool      `json:"correct"`
	Timestamp  time.Time `json:"timestamp"`
}

type History struct {
	Attempts []Attempt `json:"attempts"`
}
