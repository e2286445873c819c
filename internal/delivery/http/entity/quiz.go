package entity

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionFillBlank      QuestionType = "fill_blank"
)

// Point values per question type. Fill-blank is free text entry, so it weighs more.
const (
	PointsChoice    = 10
	PointsFillBlank = 15
)

type QuizState string

const (
	StateIntro      QuizState = "intro"
	StateInProgress QuizState = "in_progress"
	StateSubmitted  QuizState = "submitted"
)

// QuizQuestion is one generated question. IDs are unique within a single
// generation call. Options keep the order fixed at generation time; the first
// entry of Answers is the canonical correct answer and, for choice questions,
// appears verbatim among Options.
type QuizQuestion struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Prompt      string       `json:"prompt"`
	Options     []string     `json:"options,omitempty"`
	Answers     []string     `json:"answers"`
	Points      int          `json:"points"`
	Explanation string       `json:"explanation,omitempty"`
}

// ClientQuestion is the sanitized view sent to learners while a quiz is
// running: accepted answers and explanations are stripped.
type ClientQuestion struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"prompt"`
	Options []string     `json:"options,omitempty"`
	Points  int          `json:"points"`
}

type QuizResult struct {
	CorrectAnswers   int  `json:"correct_answers"`
	TotalQuestions   int  `json:"total_questions"`
	EarnedPoints     int  `json:"earned_points"`
	TotalPoints      int  `json:"total_points"`
	Percentage       int  `json:"percentage"`
	TimeSpentSeconds int  `json:"time_spent_seconds"`
	Passed           bool `json:"passed"`
}

// QuestionReview is the per-question breakdown returned after submission,
// with correct answers and explanations now included.
type QuestionReview struct {
	QuestionID    string `json:"question_id"`
	Prompt        string `json:"prompt"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Points        int    `json:"points"`
	Explanation   string `json:"explanation,omitempty"`
}

type CreateQuizRequest struct {
	LessonSlug string `json:"lesson_slug" validate:"required"`
	UserID     string `json:"user_id" validate:"required"`
}

type AnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

// NavigateRequest moves the current question pointer. Either an absolute
// Index or a relative Delta (-1 previous, +1 next) must be set.
type NavigateRequest struct {
	Index *int `json:"index"`
	Delta int  `json:"delta"`
}

// SessionSnapshot describes the running session without leaking answers.
type SessionSnapshot struct {
	SessionID      string           `json:"session_id"`
	LessonSlug     string           `json:"lesson_slug"`
	State          QuizState        `json:"state"`
	CurrentIndex   int              `json:"current_index"`
	TotalQuestions int              `json:"total_questions"`
	AnsweredIDs    []string         `json:"answered_ids"`
	ElapsedSeconds int              `json:"elapsed_seconds"`
	Questions      []ClientQuestion `json:"questions,omitempty"`
}

type SubmitQuizResponse struct {
	SessionID string           `json:"session_id"`
	Result    QuizResult       `json:"result"`
	Review    []QuestionReview `json:"review"`
}
