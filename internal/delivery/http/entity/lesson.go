package entity

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

type VocabularyItem struct {
	Word          string   `json:"word"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	Meaning       string   `json:"meaning"`
	Example       string   `json:"example,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

type Phrase struct {
	Text         string `json:"text"`
	Meaning      string `json:"meaning"`
	Example      string `json:"example,omitempty"`
	UsageContext string `json:"usage_context,omitempty"`
}

type DialogueTurn struct {
	Speaker     string `json:"speaker"`
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
	Emotion     string `json:"emotion,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

type LessonSummary struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Level           Level  `json:"level"`
	Duration        string `json:"duration,omitempty"`
	Category        string `json:"category,omitempty"`
	VocabularyCount int    `json:"vocabulary_count"`
	PhraseCount     int    `json:"phrase_count"`
}

// LessonDetail is the full read model the quiz generator consumes.
type LessonDetail struct {
	ID          uint             `json:"id"`
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Level       Level            `json:"level"`
	Duration    string           `json:"duration,omitempty"`
	Category    string           `json:"category,omitempty"`
	Vocabulary  []VocabularyItem `json:"vocabulary"`
	Phrases     []Phrase         `json:"phrases"`
	Dialogue    []DialogueTurn   `json:"dialogue"`
}
