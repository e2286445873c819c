package usecase

import (
	"fmt"
	"testing"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
	"github.com/stretchr/testify/require"
)

// choiceQuestions builds n multiple-choice questions q1..qn whose correct
// answers are a1..an, worth PointsChoice each.
func choiceQuestions(n int) []entity.QuizQuestion {
	questions := make([]entity.QuizQuestion, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, entity.QuizQuestion{
			ID:      fmt.Sprintf("q%d", i),
			Type:    entity.QuestionMultipleChoice,
			Prompt:  fmt.Sprintf("question %d", i),
			Answers: []string{fmt.Sprintf("a%d", i)},
			Points:  entity.PointsChoice,
		})
	}
	return questions
}

func correctAnswers(n int) map[string]string {
	answers := make(map[string]string, n)
	for i := 1; i <= n; i++ {
		answers[fmt.Sprintf("q%d", i)] = fmt.Sprintf("a%d", i)
	}
	return answers
}

func TestScoreQuiz(t *testing.T) {
	tests := map[string]struct {
		questions []entity.QuizQuestion
		answers   map[string]string
		want      entity.QuizResult
	}{
		"all correct": {
			questions: choiceQuestions(4),
			answers:   correctAnswers(4),
			want: entity.QuizResult{
				CorrectAnswers: 4,
				TotalQuestions: 4,
				EarnedPoints:   40,
				TotalPoints:    40,
				Percentage:     100,
				Passed:         true,
			},
		},
		"no answers": {
			questions: choiceQuestions(3),
			answers:   map[string]string{},
			want: entity.QuizResult{
				TotalQuestions: 3,
				TotalPoints:    30,
			},
		},
		"nil answers": {
			questions: choiceQuestions(2),
			answers:   nil,
			want: entity.QuizResult{
				TotalQuestions: 2,
				TotalPoints:    20,
			},
		},
		"two of three rounds to 67 and fails": {
			questions: choiceQuestions(3),
			answers: map[string]string{
				"q1": "a1",
				"q2": "a2",
				"q3": "wrong",
			},
			want: entity.QuizResult{
				CorrectAnswers: 2,
				TotalQuestions: 3,
				EarnedPoints:   20,
				TotalPoints:    30,
				Percentage:     67,
				Passed:         false,
			},
		},
		"seven of ten is exactly the pass mark": {
			questions: choiceQuestions(10),
			answers: func() map[string]string {
				answers := correctAnswers(7)
				answers["q8"] = "wrong"
				return answers
			}(),
			want: entity.QuizResult{
				CorrectAnswers: 7,
				TotalQuestions: 10,
				EarnedPoints:   70,
				TotalPoints:    100,
				Percentage:     70,
				Passed:         true,
			},
		},
		"case and whitespace insensitive": {
			questions: choiceQuestions(1),
			answers:   map[string]string{"q1": "  A1 "},
			want: entity.QuizResult{
				CorrectAnswers: 1,
				TotalQuestions: 1,
				EarnedPoints:   10,
				TotalPoints:    10,
				Percentage:     100,
				Passed:         true,
			},
		},
		"fill blank accepts alternate answers": {
			questions: []entity.QuizQuestion{{
				ID:      "q1",
				Type:    entity.QuestionFillBlank,
				Answers: []string{"How are you?", "How are you"},
				Points:  entity.PointsFillBlank,
			}},
			answers: map[string]string{"q1": "how are you"},
			want: entity.QuizResult{
				CorrectAnswers: 1,
				TotalQuestions: 1,
				EarnedPoints:   15,
				TotalPoints:    15,
				Percentage:     100,
				Passed:         true,
			},
		},
		"no questions": {
			questions: nil,
			answers:   map[string]string{"q1": "a1"},
			want:      entity.QuizResult{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ScoreQuiz(tc.questions, tc.answers, 0)
			require.Equal(t, tc.want, got)

			// Scoring is pure: a second pass over the same input must agree.
			require.Equal(t, got, ScoreQuiz(tc.questions, tc.answers, 0))
		})
	}
}

func TestScoreQuiz_TimeSpentPassthrough(t *testing.T) {
	got := ScoreQuiz(choiceQuestions(1), correctAnswers(1), 83)

	require.Equal(t, 83, got.TimeSpentSeconds)
}

func TestReviewQuiz(t *testing.T) {
	questions := choiceQuestions(3)
	questions[0].Explanation = "because"
	answers := map[string]string{
		"q1": "a1",
		"q2": "nope",
	}

	review := ReviewQuiz(questions, answers)

	require.Len(t, review, 3)

	require.True(t, review[0].IsCorrect)
	require.Equal(t, "a1", review[0].UserAnswer)
	require.Equal(t, "because", review[0].Explanation)

	require.False(t, review[1].IsCorrect)
	require.Equal(t, "nope", review[1].UserAnswer)
	require.Equal(t, "a2", review[1].CorrectAnswer)

	// Unanswered questions still show up, marked incorrect.
	require.False(t, review[2].IsCorrect)
	require.Empty(t, review[2].UserAnswer)
}
