package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
	dbEntity "github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubLessonRepo struct {
	lessons []dbEntity.Lesson
}

func (s *stubLessonRepo) FindAll(_ *gorm.DB, level string) ([]dbEntity.Lesson, error) {
	if level == "" {
		return s.lessons, nil
	}
	var out []dbEntity.Lesson
	for _, l := range s.lessons {
		if l.Level == level {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLessonRepo) FindAllWithContent(_ *gorm.DB) ([]dbEntity.Lesson, error) {
	return s.lessons, nil
}

func (s *stubLessonRepo) FindBySlug(_ *gorm.DB, slug string) (*dbEntity.Lesson, error) {
	for i := range s.lessons {
		if s.lessons[i].Slug == slug {
			return &s.lessons[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubProgressRepo struct {
	attempts  []dbEntity.QuizAttempt
	createErr error
}

func (s *stubProgressRepo) CreateAttempt(_ *gorm.DB, attempt *dbEntity.QuizAttempt) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.attempts = append(s.attempts, *attempt)
	return nil
}

func (s *stubProgressRepo) FindAttemptsByUserID(_ *gorm.DB, userID string) ([]dbEntity.QuizAttempt, error) {
	var out []dbEntity.QuizAttempt
	for _, a := range s.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubProgressRepo) FindRecentAttemptsByUserID(db *gorm.DB, userID string, limit int) ([]dbEntity.QuizAttempt, error) {
	out, _ := s.FindAttemptsByUserID(db, userID)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubProgressRepo) CountPassedLessons(_ *gorm.DB, userID string) (int64, error) {
	passed := map[uint]bool{}
	for _, a := range s.attempts {
		if a.UserID == userID && a.Passed {
			passed[a.LessonID] = true
		}
	}
	return int64(len(passed)), nil
}

func seedLessons() []dbEntity.Lesson {
	return []dbEntity.Lesson{
		{
			ID:    1,
			Slug:  "basic-greetings",
			Title: "Basic Greetings",
			Level: "beginner",
			Vocabulary: []dbEntity.VocabularyItem{
				{Word: "Hello", Meaning: "Xin chào", Example: "Hello, my name is Lan."},
				{Word: "Goodbye", Meaning: "Tạm biệt"},
				{Word: "Thanks", Meaning: "Cảm ơn"},
			},
			Phrases: []dbEntity.Phrase{
				{Text: "How are you?", Meaning: "Bạn khỏe không?", Example: "Hi Mai! How are you?"},
			},
		},
		{
			ID:    2,
			Slug:  "ordering-food",
			Title: "Ordering Food",
			Level: "beginner",
			Vocabulary: []dbEntity.VocabularyItem{
				{Word: "Menu", Meaning: "Thực đơn"},
				{Word: "Water", Meaning: "Nước"},
				{Word: "Bill", Meaning: "Hóa đơn"},
			},
		},
	}
}

type quizUsecaseFixture struct {
	usecase  QuizUsecase
	store    *SessionStore
	progress *stubProgressRepo
	now      *time.Time
}

func newQuizUsecaseFixture(t *testing.T) *quizUsecaseFixture {
	t.Helper()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f := &quizUsecaseFixture{
		store:    NewSessionStore(),
		progress: &stubProgressRepo{},
		now:      &now,
	}

	f.usecase = NewQuizUsecase(QuizUsecaseConfig{
		LessonRepo:   &stubLessonRepo{lessons: seedLessons()},
		ProgressRepo: f.progress,
		Generator:    NewQuizGenerator(rand.New(rand.NewSource(1))),
		Store:        f.store,
		Now:          func() time.Time { return *f.now },
	})
	return f
}

func (f *quizUsecaseFixture) advance(d time.Duration) {
	*f.now = f.now.Add(d)
}

func TestQuizUsecase_CreateSession(t *testing.T) {
	f := newQuizUsecaseFixture(t)
	ctx := context.Background()

	snap, err := f.usecase.CreateSession(ctx, entity.CreateQuizRequest{
		LessonSlug: "basic-greetings",
		UserID:     "user-1",
	})
	require.NoError(t, err)

	require.NotEmpty(t, snap.SessionID)
	require.Equal(t, entity.StateIntro, snap.State)
	require.Equal(t, "basic-greetings", snap.LessonSlug)
	require.Equal(t, 4, snap.TotalQuestions)
	require.Len(t, snap.Questions, 4)

	// Each create produces an independent session.
	other, err := f.usecase.CreateSession(ctx, entity.CreateQuizRequest{
		LessonSlug: "basic-greetings",
		UserID:     "user-1",
	})
	require.NoError(t, err)
	require.NotEqual(t, snap.SessionID, other.SessionID)
}

func TestQuizUsecase_CreateSession_UnknownLesson(t *testing.T) {
	f := newQuizUsecaseFixture(t)

	_, err := f.usecase.CreateSession(context.Background(), entity.CreateQuizRequest{
		LessonSlug: "does-not-exist",
		UserID:     "user-1",
	})

	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestQuizUsecase_SessionNotFound(t *testing.T) {
	f := newQuizUsecaseFixture(t)
	ctx := context.Background()

	_, err := f.usecase.StartSession(ctx, "ghost")
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.usecase.GetSession(ctx, "ghost")
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.usecase.Submit(ctx, "ghost")
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.usecase.Retry(ctx, "ghost")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestQuizUsecase_FullFlow(t *testing.T) {
	f := newQuizUsecaseFixture(t)
	ctx := context.Background()

	created, err := f.usecase.CreateSession(ctx, entity.CreateQuizRequest{
		LessonSlug: "basic-greetings",
		UserID:     "user-1",
	})
	require.NoError(t, err)

	snap, err := f.usecase.StartSession(ctx, created.SessionID)
	require.NoError(t, err)
	require.Equal(t, entity.StateInProgress, snap.State)

	// Relative navigation moves off the first question, absolute jumps back.
	snap, err = f.usecase.Navigate(ctx, created.SessionID, entity.NavigateRequest{Delta: 1})
	require.NoError(t, err)
	require.Equal(t, 1, snap.CurrentIndex)

	zero := 0
	snap, err = f.usecase.Navigate(ctx, created.SessionID, entity.NavigateRequest{Index: &zero})
	require.NoError(t, err)
	require.Equal(t, 0, snap.CurrentIndex)

	// Answer every question correctly, reading the accepted answers from the
	// server-side session.
	session, ok := f.store.Get(created.SessionID)
	require.True(t, ok)
	for _, q := range session.Questions {
		snap, err = f.usecase.RecordAnswer(ctx, created.SessionID, entity.AnswerRequest{
			QuestionID: q.ID,
			Answer:     q.Answers[0],
		})
		require.NoError(t, err)
	}
	require.Len(t, snap.AnsweredIDs, 4)

	f.advance(90 * time.Second)
	submitted, err := f.usecase.Submit(ctx, created.SessionID)
	require.NoError(t, err)

	require.Equal(t, created.SessionID, submitted.SessionID)
	require.Equal(t, 4, submitted.Result.CorrectAnswers)
	require.Equal(t, 100, submitted.Result.Percentage)
	require.True(t, submitted.Result.Passed)
	require.Equal(t, 90, submitted.Result.TimeSpentSeconds)
	require.Len(t, submitted.Review, 4)

	// The attempt was persisted.
	require.Len(t, f.progress.attempts, 1)
	attempt := f.progress.attempts[0]
	require.Equal(t, "user-1", attempt.UserID)
	require.Equal(t, uint(1), attempt.LessonID)
	require.Equal(t, created.SessionID, attempt.SessionID)
	require.True(t, attempt.Passed)
	require.Empty(t, attempt.MissedItems)

	// Retry returns to the intro with the same questions and no answers.
	snap, err = f.usecase.Retry(ctx, created.SessionID)
	require.NoError(t, err)
	require.Equal(t, entity.StateIntro, snap.State)
	require.Equal(t, 4, snap.TotalQuestions)
	require.Empty(t, snap.AnsweredIDs)
}

func TestQuizUsecase_Submit_PersistFailureStillReturnsResult(t *testing.T) {
	f := newQuizUsecaseFixture(t)
	f.progress.createErr = errors.New("db down")
	ctx := context.Background()

	created, err := f.usecase.CreateSession(ctx, entity.CreateQuizRequest{
		LessonSlug: "basic-greetings",
		UserID:     "user-1",
	})
	require.NoError(t, err)

	_, err = f.usecase.StartSession(ctx, created.SessionID)
	require.NoError(t, err)

	session, ok := f.store.Get(created.SessionID)
	require.True(t, ok)
	for _, q := range session.Questions {
		_, err = f.usecase.RecordAnswer(ctx, created.SessionID, entity.AnswerRequest{
			QuestionID: q.ID,
			Answer:     q.Answers[0],
		})
		require.NoError(t, err)
	}

	submitted, err := f.usecase.Submit(ctx, created.SessionID)
	require.NoError(t, err)
	require.True(t, submitted.Result.Passed)
	require.Empty(t, f.progress.attempts)
}
