package usecase

import (
	"testing"
	"time"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
	"github.com/stretchr/testify/require"
)

func newTestSession() *QuizSession {
	return NewQuizSession("sess-1", 1, "basic-greetings", "user-1", choiceQuestions(3))
}

func TestQuizSession_Lifecycle(t *testing.T) {
	session := newTestSession()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.Equal(t, entity.StateIntro, session.State())

	// Answering and navigating are refused before the quiz starts.
	require.ErrorIs(t, session.RecordAnswer("q1", "a1"), ErrQuizNotInProgress)
	require.ErrorIs(t, session.Navigate(1), ErrQuizNotInProgress)

	require.NoError(t, session.Start(t0))
	require.Equal(t, entity.StateInProgress, session.State())
	require.ErrorIs(t, session.Start(t0), ErrQuizAlreadyStarted)

	require.ErrorIs(t, session.RecordAnswer("ghost", "x"), ErrQuestionNotInQuiz)
	require.ErrorIs(t, session.Navigate(-1), ErrQuestionIndexOutOfRange)
	require.ErrorIs(t, session.Navigate(3), ErrQuestionIndexOutOfRange)
	require.NoError(t, session.Navigate(2))

	require.NoError(t, session.RecordAnswer("q1", "a1"))
	require.NoError(t, session.RecordAnswer("q2", "wrong"))

	// Submission is refused while q3 is unanswered; the session stays open.
	_, err := session.Submit(t0.Add(time.Minute))
	require.ErrorIs(t, err, ErrUnansweredQuestions)
	require.Equal(t, entity.StateInProgress, session.State())

	// Overwriting an answer is allowed.
	require.NoError(t, session.RecordAnswer("q2", "a2"))
	require.NoError(t, session.RecordAnswer("q3", "a3"))

	result, err := session.Submit(t0.Add(90 * time.Second))
	require.NoError(t, err)
	require.Equal(t, entity.StateSubmitted, session.State())
	require.Equal(t, 3, result.CorrectAnswers)
	require.Equal(t, 100, result.Percentage)
	require.True(t, result.Passed)
	require.Equal(t, 90, result.TimeSpentSeconds)

	// A submitted quiz is frozen.
	require.ErrorIs(t, session.RecordAnswer("q1", "changed"), ErrQuizNotInProgress)
	require.ErrorIs(t, session.Navigate(0), ErrQuizNotInProgress)
	_, err = session.Submit(t0.Add(2 * time.Minute))
	require.ErrorIs(t, err, ErrQuizNotInProgress)

	review, err := session.Review()
	require.NoError(t, err)
	require.Len(t, review, 3)
}

func TestQuizSession_Snapshot(t *testing.T) {
	session := newTestSession()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	snap := session.Snapshot(t0)
	require.Equal(t, entity.StateIntro, snap.State)
	require.Equal(t, 0, snap.ElapsedSeconds)
	require.Equal(t, 3, snap.TotalQuestions)
	require.Empty(t, snap.AnsweredIDs)

	require.NoError(t, session.Start(t0))
	require.NoError(t, session.RecordAnswer("q3", "a3"))
	require.NoError(t, session.RecordAnswer("q1", "a1"))

	snap = session.Snapshot(t0.Add(42 * time.Second))
	require.Equal(t, 42, snap.ElapsedSeconds)
	require.Equal(t, []string{"q1", "q3"}, snap.AnsweredIDs, "answered IDs are sorted")

	require.NoError(t, session.RecordAnswer("q2", "a2"))
	_, err := session.Submit(t0.Add(time.Minute))
	require.NoError(t, err)

	// After submission the clock stops at the submit time.
	snap = session.Snapshot(t0.Add(time.Hour))
	require.Equal(t, 60, snap.ElapsedSeconds)
}

func TestQuizSession_Retry(t *testing.T) {
	session := newTestSession()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Retry only applies to a submitted quiz.
	require.ErrorIs(t, session.Retry(), ErrQuizNotSubmitted)

	require.NoError(t, session.Start(t0))
	for id, answer := range correctAnswers(3) {
		require.NoError(t, session.RecordAnswer(id, answer))
	}
	require.NoError(t, session.Navigate(2))
	_, err := session.Submit(t0.Add(time.Minute))
	require.NoError(t, err)

	questionsBefore := session.Questions
	require.NoError(t, session.Retry())

	require.Equal(t, entity.StateIntro, session.State())
	require.Equal(t, questionsBefore, session.Questions, "retry keeps the same question set")

	snap := session.Snapshot(t0.Add(time.Hour))
	require.Equal(t, 0, snap.CurrentIndex)
	require.Empty(t, snap.AnsweredIDs)
	require.Equal(t, 0, snap.ElapsedSeconds)

	_, err = session.Review()
	require.ErrorIs(t, err, ErrQuizNotSubmitted)

	// The reset session can be taken again from the top.
	require.NoError(t, session.Start(t0.Add(2 * time.Hour)))
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	_, ok := store.Get("missing")
	require.False(t, ok)

	session := newTestSession()
	store.Put(session)

	got, ok := store.Get(session.ID)
	require.True(t, ok)
	require.Same(t, session, got)

	store.Delete(session.ID)
	_, ok = store.Get(session.ID)
	require.False(t, ok)
}
