package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/repository"
	dbEntity "github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/entity"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/board"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/llm"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrLeaderboardUnavailable = errors.New("leaderboard is not configured")

const recentAttemptsForTips = 5

type ProgressUsecase interface {
	GetUserProgress(ctx context.Context, userID string) (*entity.UserProgress, error)
	GetLeaderboard(ctx context.Context, lessonSlug string, limit int) (*entity.Leaderboard, error)
	GenerateStudyTips(ctx context.Context, userID string) (*entity.StudyTipsResponse, error)
}

type ProgressUsecaseConfig struct {
	DB              *gorm.DB
	Log             *logrus.Logger
	Repository      repository.ProgressRepository
	Board           *board.Board
	LLM             *llm.Client
	LeaderboardSize int
}

type progressUsecase struct {
	cfg ProgressUsecaseConfig
}

func NewProgressUsecase(cfg ProgressUsecaseConfig) ProgressUsecase {
	return &progressUsecase{cfg: cfg}
}

func (u *progressUsecase) GetUserProgress(_ context.Context, userID string) (*entity.UserProgress, error) {
	attempts, err := u.cfg.Repository.FindAttemptsByUserID(u.cfg.DB, userID)
	if err != nil {
		return nil, err
	}

	passed, err := u.cfg.Repository.CountPassedLessons(u.cfg.DB, userID)
	if err != nil {
		return nil, err
	}

	logs := make([]entity.AttemptLog, 0, len(attempts))
	scoreSum := 0
	for _, a := range attempts {
		scoreSum += a.Percentage
		logs = append(logs, entity.AttemptLog{
			LessonSlug:       a.LessonSlug,
			SessionID:        a.SessionID,
			CorrectAnswers:   a.CorrectAnswers,
			TotalQuestions:   a.TotalQuestions,
			EarnedPoints:     a.EarnedPoints,
			TotalPoints:      a.TotalPoints,
			Percentage:       a.Percentage,
			TimeSpentSeconds: a.TimeSpentSeconds,
			Passed:           a.Passed,
			AttemptedAt:      a.CreatedAt.Format(time.RFC3339),
		})
	}

	average := 0
	if len(attempts) > 0 {
		average = int(math.Round(float64(scoreSum) / float64(len(attempts))))
	}

	return &entity.UserProgress{
		Summary: entity.ProgressSummary{
			UserID:        userID,
			TotalAttempts: len(attempts),
			LessonsPassed: int(passed),
			AverageScore:  average,
		},
		Attempts: logs,
	}, nil
}

func (u *progressUsecase) GetLeaderboard(ctx context.Context, lessonSlug string, limit int) (*entity.Leaderboard, error) {
	if u.cfg.Board == nil {
		return nil, ErrLeaderboardUnavailable
	}

	if limit <= 0 {
		limit = u.cfg.LeaderboardSize
	}

	rows, err := u.cfg.Board.Top(ctx, lessonSlug, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entity.LeaderboardEntry{
			UserID: row.UserID,
			Score:  row.Score,
		})
	}

	return &entity.Leaderboard{
		LessonSlug: lessonSlug,
		Entries:    entries,
	}, nil
}

// GenerateStudyTips asks the configured LLM for advice based on the user's
// recent attempts. Without an API key, or when the call fails, it falls back
// to static tips built from the same data.
func (u *progressUsecase) GenerateStudyTips(ctx context.Context, userID string) (*entity.StudyTipsResponse, error) {
	attempts, err := u.cfg.Repository.FindRecentAttemptsByUserID(u.cfg.DB, userID, recentAttemptsForTips)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return &entity.StudyTipsResponse{
			UserID: userID,
			Tips:   "Take a quiz first so we can see what to work on. Start with a beginner lesson and aim for 70% or higher.",
			Source: "fallback",
		}, nil
	}

	if u.cfg.LLM.Enabled() {
		tips, err := u.cfg.LLM.GenerateText(ctx, buildTipsPrompt(attempts))
		if err == nil {
			return &entity.StudyTipsResponse{UserID: userID, Tips: tips, Source: "ai"}, nil
		}
		if u.cfg.Log != nil {
			u.cfg.Log.Warnf("study tips generation failed, using fallback: %v", err)
		}
	}

	return &entity.StudyTipsResponse{
		UserID: userID,
		Tips:   fallbackTips(attempts),
		Source: "fallback",
	}, nil
}

func buildTipsPrompt(attempts []dbEntity.QuizAttempt) string {
	var sb strings.Builder
	sb.WriteString("You are an English tutor for Vietnamese learners. ")
	sb.WriteString("Based on the quiz attempts below, write 3 short, encouraging study tips in plain text.\n\n")
	for _, a := range attempts {
		fmt.Fprintf(&sb, "- Lesson %q: %d/%d correct (%d%%), passed=%t",
			a.LessonSlug, a.CorrectAnswers, a.TotalQuestions, a.Percentage, a.Passed)
		if a.MissedItems != "" {
			fmt.Fprintf(&sb, ", missed: %s", a.MissedItems)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func fallbackTips(attempts []dbEntity.QuizAttempt) string {
	var missed []string
	failedLesson := ""
	for _, a := range attempts {
		if a.MissedItems != "" {
			missed = append(missed, a.MissedItems)
		}
		if !a.Passed && failedLesson == "" {
			failedLesson = a.LessonSlug
		}
	}

	var sb strings.Builder
	sb.WriteString("Review the questions you missed before retaking a quiz.")
	if len(missed) > 0 {
		fmt.Fprintf(&sb, " Focus on: %s.", strings.Join(missed, ", "))
	}
	if failedLesson != "" {
		fmt.Fprintf(&sb, " Retake the %q lesson quiz until you reach 70%%.", failedLesson)
	}
	sb.WriteString(" Short daily sessions beat one long cram.")
	return sb.String()
}
