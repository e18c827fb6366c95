package fixtures

import (
	"encoding/json"
	"time"

	"github.com/trezcool/darasa/core/calendar"
	"github.com/trezcool/darasa/core/exam"
	"github.com/trezcool/darasa/core/forum"
	"github.com/trezcool/darasa/core/leaderboard"
	"github.com/trezcool/darasa/core/problem"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/core/visualization"
)

const day = 24 * time.Hour

func seedUsers() []user.User {
	return []user.User{
		{ID: 1, Username: "student1", Email: "student1@example.com", Role: user.RoleStudent, CoinBalance: 150},
		{ID: 2, Username: "teacher1", Email: "teacher1@example.com", Role: user.RoleTeacher, CoinBalance: 500},
	}
}

func seedEvents(now time.Time) []calendar.Event {
	return []calendar.Event{
		{
			ID:          1,
			Title:       "Algebra Lecture",
			Description: "Introduction to algebraic expressions",
			EventType:   calendar.TypeLecture,
			StartTime:   now.Add(day),
			EndTime:     now.Add(day + time.Hour),
		},
		{
			ID:          2,
			Title:       "Calculus Exam",
			Description: "Final exam covering all calculus topics",
			EventType:   calendar.TypeExam,
			StartTime:   now.Add(2 * day),
			EndTime:     now.Add(2*day + 2*time.Hour),
		},
	}
}

func seedProblems() []problem.Problem {
	return []problem.Problem{
		{
			ID:          1,
			Title:       "Solve for x: 2x + 5 = 15",
			Description: "Find the value of x in the given linear equation.",
			Difficulty:  problem.DifficultyEasy,
			Topic:       "Algebra",
			PointValue:  10,
		},
		{
			ID:          2,
			Title:       "Find the derivative of f(x) = x³ + 2x² - 4x + 7",
			Description: "Calculate the first derivative of the given polynomial function.",
			Difficulty:  problem.DifficultyMedium,
			Topic:       "Calculus",
			PointValue:  20,
		},
		{
			ID:          3,
			Title:       "Prove the Pythagorean theorem",
			Description: "Provide a mathematical proof for the Pythagorean theorem (a² + b² = c²).",
			Difficulty:  problem.DifficultyHard,
			Topic:       "Geometry",
			PointValue:  30,
		},
	}
}

func seedAttempts(now time.Time) []problem.Attempt {
	return []problem.Attempt{
		{ID: 1, Title: "Solve for x: 2x + 5 = 15", Difficulty: problem.DifficultyEasy, Correct: true, Timestamp: now.Add(-day)},
		{ID: 2, Title: "Find the derivative of f(x) = x³ + 2x² - 4x + 7", Difficulty: problem.DifficultyMedium, Correct: false, Timestamp: now.Add(-2 * day)},
	}
}

func seedPosts(now time.Time) []forum.Post {
	return []forum.Post{
		{
			ID:         1,
			AuthorID:   1,
			AuthorName: "student1",
			Title:      "Help with integration by parts",
			Content:    "I'm struggling with integration by parts. Can someone explain the formula and provide an example?",
			CreatedAt:  now.Add(-day),
		},
		{
			ID:         2,
			AuthorID:   2,
			AuthorName: "teacher1",
			Title:      "Tips for solving quadratic equations",
			Content:    "Here are some helpful tips for solving quadratic equations quickly...",
			CreatedAt:  now.Add(-2 * day),
		},
	}
}

func seedComments(now time.Time) []forum.Comment {
	return []forum.Comment{
		{
			ID:         1,
			PostID:     1,
			AuthorID:   2,
			AuthorName: "teacher1",
			Content:    "The formula for integration by parts is ∫u(x)v'(x)dx = u(x)v(x) - ∫u'(x)v(x)dx. Let me know if you need more help!",
			CreatedAt:  now.Add(-12 * time.Hour),
		},
		{
			ID:         2,
			PostID:     1,
			AuthorID:   1,
			AuthorName: "student1",
			Content:    "Thank you! That helps a lot.",
			CreatedAt:  now.Add(-6 * time.Hour),
		},
	}
}

func seedLeaderboard() []leaderboard.Entry {
	return []leaderboard.Entry{
		{Rank: 1, ID: 2, Username: "teacher1", Coins: 500},
		{Rank: 2, ID: 1, Username: "student1", Coins: 150},
		{Rank: 3, ID: 3, Username: "student2", Coins: 120},
		{Rank: 4, ID: 4, Username: "student3", Coins: 100},
		{Rank: 5, ID: 5, Username: "student4", Coins: 80},
	}
}

const (
	quadraticPayload = `{
  "labels": ["-10", "-8", "-6", "-4", "-2", "0", "2", "4", "6", "8", "10"],
  "datasets": [
    {"label": "y = x²", "data": [100, 64, 36, 16, 4, 0, 4, 16, 36, 64, 100], "borderColor": "rgb(75, 192, 192)", "tension": 0.1}
  ],
  "xAxisLabel": "x",
  "yAxisLabel": "y",
  "title": "Quadratic Function: y = x²"
}`

	trigPayload = `{
  "labels": ["0", "π/4", "π/2", "3π/4", "π", "5π/4", "3π/2", "7π/4", "2π"],
  "datasets": [
    {"label": "sin(x)", "data": [0, 0.7071, 1, 0.7071, 0, -0.7071, -1, -0.7071, 0], "borderColor": "rgb(255, 99, 132)", "tension": 0.1},
    {"label": "cos(x)", "data": [1, 0.7071, 0, -0.7071, -1, -0.7071, 0, 0.7071, 1], "borderColor": "rgb(54, 162, 235)", "tension": 0.1}
  ],
  "xAxisLabel": "x",
  "yAxisLabel": "y",
  "title": "Trigonometric Functions"
}`
)

func seedVisualizations() []visualization.Visualization {
	return []visualization.Visualization{
		{
			ID:                1,
			Title:             "Quadratic Function Visualization",
			Description:       "Interactive visualization of y = ax² + bx + c with adjustable parameters.",
			VisualizationType: "line",
			Topic:             "Algebra",
			DataPayload:       json.RawMessage(quadraticPayload),
		},
		{
			ID:                2,
			Title:             "Trigonometric Functions",
			Description:       "Visualization of sine and cosine functions over the interval [0, 2π].",
			VisualizationType: "line",
			Topic:             "Trigonometry",
			DataPayload:       json.RawMessage(trigPayload),
		},
	}
}

func utcDate(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func seedExamFiles() []exam.File {
	return []exam.File{
		{ID: 1, Title: "Exam 2024", Year: 2024, Type: exam.TypeExam, FileURL: "/sample-exams/exam-2024.pdf", UploadDate: utcDate(2024, time.January, 15)},
		{ID: 2, Title: "Exam 2023", Year: 2023, Type: exam.TypeExam, FileURL: "/sample-exams/exam-2023.pdf", UploadDate: utcDate(2023, time.January, 15)},
		{ID: 3, Title: "Exam 2022", Year: 2022, Type: exam.TypeExam, FileURL: "/sample-exams/exam-2022.pdf", UploadDate: utcDate(2022, time.January, 15)},
		{ID: 4, Title: "Exam 2021 B", Year: 2021, Type: exam.TypeExam, Semester: "B", FileURL: "/sample-exams/exam-2021-b.pdf", UploadDate: utcDate(2021, time.July, 15)},
		{ID: 5, Title: "Exam 2021 A", Year: 2021, Type: exam.TypeExam, Semester: "A", FileURL: "/sample-exams/exam-2021-a.pdf", UploadDate: utcDate(2021, time.January, 15)},
		{ID: 6, Title: "Exam 2020", Year: 2020, Type: exam.TypeExam, FileURL: "/sample-exams/exam-2020.pdf", UploadDate: utcDate(2020, time.January, 15)},
		{ID: 7, Title: "Midterm 2019", Year: 2019, Type: exam.TypeMidterm, FileURL: "/sample-exams/midterm-2019.pdf", UploadDate: utcDate(2019, time.April, 15)},
		{ID: 8, Title: "Midterm 2018", Year: 2018, Type: exam.TypeMidterm, FileURL: "/sample-exams/midterm-2018.pdf", UploadDate: utcDate(2018, time.April, 15)},
		{ID: 9, Title: "Final 2023", Year: 2023, Type: exam.TypeFinal, FileURL: "/sample-exams/final-2023.pdf", UploadDate: utcDate(2023, time.June, 15)},
		{ID: 10, Title: "Final 2022", Year: 2022, Type: exam.TypeFinal, FileURL: "/sample-exams/final-2022.pdf", UploadDate: utcDate(2022, time.June, 15)},
		{ID: 11, Title: "Final 2021", Year: 2021, Type: exam.TypeFinal, FileURL: "/sample-exams/final-2021.pdf", UploadDate: utcDate(2021, time.June, 15)},
		{ID: 12, Title: "Final 2020", Year: 2020, Type: exam.TypeFinal, FileURL: "/sample-exams/final-2020.pdf", UploadDate: utcDate(2020, time.June, 15)},
		{ID: 13, Title: "Final 2019", Year: 2019, Type: exam.TypeFinal, FileURL: "/sample-exams/final-2019.pdf", UploadDate: utcDate(2019, time.June, 15)},
		{ID: 14, Title: "Final 2018", Year: 2018, Type: exam.TypeFinal, FileURL: "/sample-exams/final-2018.pdf", UploadDate: utcDate(2018, time.June, 15)},
	}
}
