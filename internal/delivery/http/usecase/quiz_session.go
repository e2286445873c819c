package usecase

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
)

var (
	ErrQuizAlreadyStarted      = errors.New("quiz has already been started")
	ErrQuizNotInProgress       = errors.New("quiz is not in progress")
	ErrQuizNotSubmitted        = errors.New("quiz has not been submitted yet")
	ErrUnansweredQuestions     = errors.New("all questions must be answered before submitting")
	ErrQuestionNotInQuiz       = errors.New("question does not belong to this quiz")
	ErrQuestionIndexOutOfRange = errors.New("question index out of range")
)

// QuizSession is the server-side state of one quiz attempt. The question list
// is fixed at creation; only the answer map, the current index and the state
// change afterwards. All mutating methods are guarded by a per-session mutex,
// so a session is safe to share between the handlers operating on it.
type QuizSession struct {
	ID         string
	LessonID   uint
	LessonSlug string
	UserID     string
	Questions  []entity.QuizQuestion

	mu           sync.Mutex
	state        entity.QuizState
	currentIndex int
	answers      map[string]string
	startedAt    time.Time
	submittedAt  time.Time
}

func NewQuizSession(id string, lessonID uint, lessonSlug, userID string, questions []entity.QuizQuestion) *QuizSession {
	return &QuizSession{
		ID:         id,
		LessonID:   lessonID,
		LessonSlug: lessonSlug,
		UserID:     userID,
		Questions:  questions,
		state:      entity.StateIntro,
		answers:    make(map[string]string),
	}
}

// Start moves intro -> in_progress, clearing answers and resetting the index
// and timer.
func (s *QuizSession) Start(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.StateIntro {
		return ErrQuizAlreadyStarted
	}

	s.state = entity.StateInProgress
	s.currentIndex = 0
	s.answers = make(map[string]string)
	s.startedAt = now
	return nil
}

// RecordAnswer stores (or overwrites) the answer for a question in this quiz.
func (s *QuizSession) RecordAnswer(questionID, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.StateInProgress {
		return ErrQuizNotInProgress
	}
	if !s.hasQuestion(questionID) {
		return ErrQuestionNotInQuiz
	}

	s.answers[questionID] = answer
	return nil
}

// Navigate moves the current question pointer to index.
func (s *QuizSession) Navigate(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.StateInProgress {
		return ErrQuizNotInProgress
	}
	if index < 0 || index >= len(s.Questions) {
		return ErrQuestionIndexOutOfRange
	}

	s.currentIndex = index
	return nil
}

// Submit scores the quiz and moves in_progress -> submitted. The transition is
// refused while any question is unanswered; the session stays in progress.
func (s *QuizSession) Submit(now time.Time) (entity.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.StateInProgress {
		return entity.QuizResult{}, ErrQuizNotInProgress
	}
	for _, q := range s.Questions {
		if _, ok := s.answers[q.ID]; !ok {
			return entity.QuizResult{}, ErrUnansweredQuestions
		}
	}

	s.state = entity.StateSubmitted
	s.submittedAt = now
	elapsed := int(now.Sub(s.startedAt).Seconds())
	return ScoreQuiz(s.Questions, s.answers, elapsed), nil
}

// Retry moves submitted -> intro, keeping the generated question set but
// dropping all answers and resetting the index.
func (s *QuizSession) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.StateSubmitted {
		return ErrQuizNotSubmitted
	}

	s.state = entity.StateIntro
	s.currentIndex = 0
	s.answers = make(map[string]string)
	s.startedAt = time.Time{}
	s.submittedAt = time.Time{}
	return nil
}

// Snapshot renders the session for the client. Elapsed time stops counting
// once the quiz is submitted; before the start it is zero.
func (s *QuizSession) Snapshot(now time.Time) entity.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	answered := make([]string, 0, len(s.answers))
	for id := range s.answers {
		answered = append(answered, id)
	}
	sort.Strings(answered)

	return entity.SessionSnapshot{
		SessionID:      s.ID,
		LessonSlug:     s.LessonSlug,
		State:          s.state,
		CurrentIndex:   s.currentIndex,
		TotalQuestions: len(s.Questions),
		AnsweredIDs:    answered,
		ElapsedSeconds: s.elapsedLocked(now),
	}
}

// Review returns the per-question breakdown. Only valid after submission.
func (s *QuizSession) Review() ([]entity.QuestionReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.StateSubmitted {
		return nil, ErrQuizNotSubmitted
	}
	return ReviewQuiz(s.Questions, s.answers), nil
}

func (s *QuizSession) State() entity.QuizState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *QuizSession) hasQuestion(questionID string) bool {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

func (s *QuizSession) elapsedLocked(now time.Time) int {
	switch s.state {
	case entity.StateInProgress:
		return int(now.Sub(s.startedAt).Seconds())
	case entity.StateSubmitted:
		return int(s.submittedAt.Sub(s.startedAt).Seconds())
	default:
		return 0
	}
}
