package entity

import (
	"time"

	"gorm.io/gorm"
)

// Lesson - A unit of learning content: vocabulary, phrases and a dialogue
type Lesson struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	Slug        string           `gorm:"uniqueIndex;size:100;not null" json:"slug"` // e.g. "basic-greetings"
	Title       string           `gorm:"size:200;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Level       string           `gorm:"size:20;not null;index" json:"level"` // beginner, intermediate, advanced
	Duration    string           `gorm:"size:50" json:"duration"`             // display label, e.g. "15 min"
	Category    string           `gorm:"size:100;index" json:"category"`
	Vocabulary  []VocabularyItem `gorm:"foreignKey:LessonID" json:"vocabulary"`
	Phrases     []Phrase         `gorm:"foreignKey:LessonID" json:"phrases"`
	Dialogue    []DialogueTurn   `gorm:"foreignKey:LessonID" json:"dialogue"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"deleted_at,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// VocabularyItem - A word taught by a lesson
type VocabularyItem struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	LessonID      uint           `gorm:"not null;index" json:"lesson_id"`
	Position      int            `gorm:"not null;default:0" json:"position"`
	Word          string         `gorm:"size:100;not null" json:"word"`
	Pronunciation string         `gorm:"size:100" json:"pronunciation"` // IPA-like hint
	Meaning       string         `gorm:"size:200;not null" json:"meaning"`
	Example       string         `gorm:"type:text" json:"example"`
	Tags          string         `gorm:"size:200" json:"tags"` // comma separated
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (VocabularyItem) TableName() string {
	return "vocabulary_items"
}

// Phrase - A common phrase taught by a lesson
type Phrase struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	LessonID     uint           `gorm:"not null;index" json:"lesson_id"`
	Position     int            `gorm:"not null;default:0" json:"position"`
	Text         string         `gorm:"size:200;not null" json:"text"`
	Meaning      string         `gorm:"size:200;not null" json:"meaning"`
	Example      string         `gorm:"type:text" json:"example"`
	UsageContext string         `gorm:"size:200" json:"usage_context"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Phrase) TableName() string {
	return "phrases"
}

// DialogueTurn - One turn of the lesson dialogue, ordered by position
type DialogueTurn struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	LessonID    uint           `gorm:"not null;index" json:"lesson_id"`
	Position    int            `gorm:"not null" json:"position"`
	Speaker     string         `gorm:"size:50;not null" json:"speaker"`
	Text        string         `gorm:"type:text;not null" json:"text"`
	Translation string         `gorm:"type:text" json:"translation"`
	Emotion     string         `gorm:"size:50" json:"emotion"`
	Gender      string         `gorm:"size:20" json:"gender"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (DialogueTurn) TableName() string {
	return "dialogue_turns"
}
