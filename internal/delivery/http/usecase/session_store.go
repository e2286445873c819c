package usecase

import "sync"

// SessionStore keeps the live quiz sessions in process memory. Abandoned
// sessions are simply deleted; there is no cleanup obligation beyond that.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*QuizSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*QuizSession)}
}

func (st *SessionStore) Put(s *QuizSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *SessionStore) Get(id string) (*QuizSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
