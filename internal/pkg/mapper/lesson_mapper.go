package mapper

import (
	"strings"

	httpEntity "github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
	dbEntity "github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/entity"
)

// ToLessonDetail converts the persisted lesson into the read model consumed
// by the quiz generator and the lesson detail endpoint.
func ToLessonDetail(lesson *dbEntity.Lesson) httpEntity.LessonDetail {
	detail := httpEntity.LessonDetail{
		ID:          lesson.ID,
		Slug:        lesson.Slug,
		Title:       lesson.Title,
		Description: lesson.Description,
		Level:       httpEntity.Level(lesson.Level),
		Duration:    lesson.Duration,
		Category:    lesson.Category,
		Vocabulary:  make([]httpEntity.VocabularyItem, 0, len(lesson.Vocabulary)),
		Phrases:     make([]httpEntity.Phrase, 0, len(lesson.Phrases)),
		Dialogue:    make([]httpEntity.DialogueTurn, 0, len(lesson.Dialogue)),
	}

	for _, v := range lesson.Vocabulary {
		detail.Vocabulary = append(detail.Vocabulary, httpEntity.VocabularyItem{
			Word:          v.Word,
			Pronunciation: v.Pronunciation,
			Meaning:       v.Meaning,
			Example:       v.Example,
			Tags:          splitTags(v.Tags),
		})
	}

	for _, p := range lesson.Phrases {
		detail.Phrases = append(detail.Phrases, httpEntity.Phrase{
			Text:         p.Text,
			Meaning:      p.Meaning,
			Example:      p.Example,
			UsageContext: p.UsageContext,
		})
	}

	for _, d := range lesson.Dialogue {
		detail.Dialogue = append(detail.Dialogue, httpEntity.DialogueTurn{
			Speaker:     d.Speaker,
			Text:        d.Text,
			Translation: d.Translation,
			Emotion:     d.Emotion,
			Gender:      d.Gender,
		})
	}

	return detail
}

func ToLessonSummary(lesson *dbEntity.Lesson) httpEntity.LessonSummary {
	return httpEntity.LessonSummary{
		Slug:            lesson.Slug,
		Title:           lesson.Title,
		Description:     lesson.Description,
		Level:           httpEntity.Level(lesson.Level),
		Duration:        lesson.Duration,
		Category:        lesson.Category,
		VocabularyCount: len(lesson.Vocabulary),
		PhraseCount:     len(lesson.Phrases),
	}
}

// ToClientQuestions strips accepted answers and explanations from generated
// questions so they never reach the learner before submission.
func ToClientQuestions(questions []httpEntity.QuizQuestion) []httpEntity.ClientQuestion {
	out := make([]httpEntity.ClientQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, httpEntity.ClientQuestion{
			ID:      q.ID,
			Type:    q.Type,
			Prompt:  q.Prompt,
			Options: q.Options,
			Points:  q.Points,
		})
	}
	return out
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
