package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/repository"
	dbEntity "github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/entity"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/board"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/mapper"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("quiz session not found")

type QuizUsecase interface {
	CreateSession(ctx context.Context, req entity.CreateQuizRequest) (*entity.SessionSnapshot, error)
	StartSession(ctx context.Context, sessionID string) (*entity.SessionSnapshot, error)
	GetSession(ctx context.Context, sessionID string) (*entity.SessionSnapshot, error)
	RecordAnswer(ctx context.Context, sessionID string, req entity.AnswerRequest) (*entity.SessionSnapshot, error)
	Navigate(ctx context.Context, sessionID string, req entity.NavigateRequest) (*entity.SessionSnapshot, error)
	Submit(ctx context.Context, sessionID string) (*entity.SubmitQuizResponse, error)
	Retry(ctx context.Context, sessionID string) (*entity.SessionSnapshot, error)
}

type QuizUsecaseConfig struct {
	DB           *gorm.DB
	Log          *logrus.Logger
	LessonRepo   repository.LessonRepository
	ProgressRepo repository.ProgressRepository
	Board        *board.Board
	Generator    *QuizGenerator
	Store        *SessionStore
	Now          func() time.Time
}

type quizUsecase struct {
	cfg QuizUsecaseConfig
}

func NewQuizUsecase(cfg QuizUsecaseConfig) QuizUsecase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &quizUsecase{cfg: cfg}
}

// CreateSession generates a quiz for the lesson and parks it in the intro
// state. Generation failures (no vocabulary and no phrases) surface here,
// before any session exists.
func (u *quizUsecase) CreateSession(_ context.Context, req entity.CreateQuizRequest) (*entity.SessionSnapshot, error) {
	lesson, err := u.cfg.LessonRepo.FindBySlug(u.cfg.DB, req.LessonSlug)
	if err != nil {
		return nil, fmt.Errorf("lesson not found: %w", err)
	}

	catalogRows, err := u.cfg.LessonRepo.FindAllWithContent(u.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("load lesson catalog: %w", err)
	}

	catalog := make([]entity.LessonDetail, 0, len(catalogRows))
	for i := range catalogRows {
		catalog = append(catalog, mapper.ToLessonDetail(&catalogRows[i]))
	}

	questions, err := u.cfg.Generator.Generate(mapper.ToLessonDetail(lesson), catalog)
	if err != nil {
		return nil, err
	}

	session := NewQuizSession(uuid.NewString(), lesson.ID, lesson.Slug, req.UserID, questions)
	u.cfg.Store.Put(session)

	return u.snapshotWithQuestions(session), nil
}

func (u *quizUsecase) StartSession(_ context.Context, sessionID string) (*entity.SessionSnapshot, error) {
	session, ok := u.cfg.Store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := session.Start(u.cfg.Now()); err != nil {
		return nil, err
	}
	return u.snapshot(session), nil
}

func (u *quizUsecase) GetSession(_ context.Context, sessionID string) (*entity.SessionSnapshot, error) {
	session, ok := u.cfg.Store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return u.snapshotWithQuestions(session), nil
}

func (u *quizUsecase) RecordAnswer(_ context.Context, sessionID string, req entity.AnswerRequest) (*entity.SessionSnapshot, error) {
	session, ok := u.cfg.Store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := session.RecordAnswer(req.QuestionID, req.Answer); err != nil {
		return nil, err
	}
	return u.snapshot(session), nil
}

func (u *quizUsecase) Navigate(_ context.Context, sessionID string, req entity.NavigateRequest) (*entity.SessionSnapshot, error) {
	session, ok := u.cfg.Store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	index := session.Snapshot(u.cfg.Now()).CurrentIndex + req.Delta
	if req.Index != nil {
		index = *req.Index
	}

	if err := session.Navigate(index); err != nil {
		return nil, err
	}
	return u.snapshot(session), nil
}

// Submit scores the session, persists the attempt and updates the lesson
// leaderboard. Persistence is best effort: the learner still gets their
// result when the progress write fails.
func (u *quizUsecase) Submit(ctx context.Context, sessionID string) (*entity.SubmitQuizResponse, error) {
	session, ok := u.cfg.Store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	result, err := session.Submit(u.cfg.Now())
	if err != nil {
		return nil, err
	}

	review, err := session.Review()
	if err != nil {
		return nil, err
	}

	if err := u.cfg.ProgressRepo.CreateAttempt(u.cfg.DB, buildAttempt(session, result, review)); err != nil {
		u.logWarnf("failed to persist quiz attempt: session=%s: %v", session.ID, err)
	}

	if u.cfg.Board != nil {
		if err := u.cfg.Board.RecordScore(ctx, session.LessonSlug, session.UserID, result.Percentage); err != nil {
			u.logWarnf("failed to update leaderboard: session=%s: %v", session.ID, err)
		}
	}

	return &entity.SubmitQuizResponse{
		SessionID: session.ID,
		Result:    result,
		Review:    review,
	}, nil
}

// Retry re-enters the intro state with the same question set, clearing all
// answers and the current index.
func (u *quizUsecase) Retry(_ context.Context, sessionID string) (*entity.SessionSnapshot, error) {
	session, ok := u.cfg.Store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := session.Retry(); err != nil {
		return nil, err
	}
	return u.snapshotWithQuestions(session), nil
}

func (u *quizUsecase) snapshot(session *QuizSession) *entity.SessionSnapshot {
	snap := session.Snapshot(u.cfg.Now())
	return &snap
}

func (u *quizUsecase) snapshotWithQuestions(session *QuizSession) *entity.SessionSnapshot {
	snap := session.Snapshot(u.cfg.Now())
	snap.Questions = mapper.ToClientQuestions(session.Questions)
	return &snap
}

func (u *quizUsecase) logWarnf(format string, args ...any) {
	if u.cfg.Log != nil {
		u.cfg.Log.Warnf(format, args...)
	}
}

func buildAttempt(session *QuizSession, result entity.QuizResult, review []entity.QuestionReview) *dbEntity.QuizAttempt {
	var missed []string
	for _, r := range review {
		if !r.IsCorrect {
			missed = append(missed, r.Prompt)
		}
	}

	return &dbEntity.QuizAttempt{
		UserID:           session.UserID,
		LessonID:         session.LessonID,
		LessonSlug:       session.LessonSlug,
		SessionID:        session.ID,
		CorrectAnswers:   result.CorrectAnswers,
		TotalQuestions:   result.TotalQuestions,
		EarnedPoints:     result.EarnedPoints,
		TotalPoints:      result.TotalPoints,
		Percentage:       result.Percentage,
		TimeSpentSeconds: result.TimeSpentSeconds,
		Passed:           result.Passed,
		MissedItems:      strings.Join(missed, ", "),
	}
}
