package entity

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt - The outcome of one submitted quiz session
type QuizAttempt struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	UserID           string         `gorm:"size:100;not null;index" json:"user_id"`
	LessonID         uint           `gorm:"not null;index" json:"lesson_id"`
	LessonSlug       string         `gorm:"size:100;not null;index" json:"lesson_slug"`
	SessionID        string         `gorm:"size:100;not null;index" json:"session_id"`
	CorrectAnswers   int            `gorm:"not null" json:"correct_answers"`
	TotalQuestions   int            `gorm:"not null" json:"total_questions"`
	EarnedPoints     int            `gorm:"not null" json:"earned_points"`
	TotalPoints      int            `gorm:"not null" json:"total_points"`
	Percentage       int            `gorm:"not null" json:"percentage"`
	TimeSpentSeconds int            `gorm:"not null" json:"time_spent_seconds"`
	Passed           bool           `gorm:"not null" json:"passed"`
	MissedItems      string         `gorm:"type:text" json:"missed_items"` // comma separated prompts the user got wrong
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
