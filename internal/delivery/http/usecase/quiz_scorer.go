package usecase

import (
	"math"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
)

// PassThreshold is the minimum rounded percentage that counts as passing.
const PassThreshold = 70

// ScoreQuiz compares the recorded answers against the question list and
// aggregates the result. It is a pure function: missing or malformed answers
// score as incorrect, never as an error, so callers may invoke it
// speculatively mid-session for a progress preview.
func ScoreQuiz(questions []entity.QuizQuestion, answers map[string]string, timeSpentSeconds int) entity.QuizResult {
	result := entity.QuizResult{
		TotalQuestions:   len(questions),
		TimeSpentSeconds: timeSpentSeconds,
	}

	for _, q := range questions {
		result.TotalPoints += q.Points
		submitted, ok := answers[q.ID]
		if !ok {
			continue
		}
		if answerMatches(q, submitted) {
			result.CorrectAnswers++
			result.EarnedPoints += q.Points
		}
	}

	if result.TotalQuestions > 0 {
		ratio := float64(result.CorrectAnswers) / float64(result.TotalQuestions)
		result.Percentage = int(math.Round(ratio * 100))
	}
	result.Passed = result.Percentage >= PassThreshold

	return result
}

// ReviewQuiz produces the per-question breakdown shown after submission.
func ReviewQuiz(questions []entity.QuizQuestion, answers map[string]string) []entity.QuestionReview {
	review := make([]entity.QuestionReview, 0, len(questions))
	for _, q := range questions {
		submitted := answers[q.ID]
		review = append(review, entity.QuestionReview{
			QuestionID:    q.ID,
			Prompt:        q.Prompt,
			UserAnswer:    submitted,
			CorrectAnswer: q.Answers[0],
			IsCorrect:     answerMatches(q, submitted),
			Points:        q.Points,
			Explanation:   q.Explanation,
		})
	}
	return review
}

// answerMatches reports whether the submission equals any accepted answer
// under trimmed, case-insensitive comparison.
func answerMatches(q entity.QuizQuestion, submitted string) bool {
	key := normalizeAnswer(submitted)
	if key == "" {
		return false
	}
	for _, accepted := range q.Answers {
		if key == normalizeAnswer(accepted) {
			return true
		}
	}
	return false
}
