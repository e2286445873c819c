package entity

type AttemptLog struct {
	LessonSlug       string `json:"lesson_slug"`
	SessionID        string `json:"session_id"`
	CorrectAnswers   int    `json:"correct_answers"`
	TotalQuestions   int    `json:"total_questions"`
	EarnedPoints     int    `json:"earned_points"`
	TotalPoints      int    `json:"total_points"`
	Percentage       int    `json:"percentage"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
	Passed           bool   `json:"passed"`
	AttemptedAt      string `json:"attempted_at"`
}

type ProgressSummary struct {
	UserID        string `json:"user_id"`
	TotalAttempts int    `json:"total_attempts"`
	LessonsPassed int    `json:"lessons_passed"`
	AverageScore  int    `json:"average_score"`
}

type UserProgress struct {
	Summary  ProgressSummary `json:"summary"`
	Attempts []AttemptLog    `json:"attempts"`
}

type LeaderboardEntry struct {
	UserID string  `json:"user_id"`
	Score  float64 `json:"score"`
}

type Leaderboard struct {
	LessonSlug string             `json:"lesson_slug"`
	Entries    []LeaderboardEntry `json:"entries"`
}

type StudyTipsResponse struct {
	UserID string `json:"user_id"`
	Tips   string `json:"tips"`
	Source string `json:"source"` // "ai" or "fallback"
}
