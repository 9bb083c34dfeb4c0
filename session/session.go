package session

import "sync"

// Session is one user's progress through a topic's question sequence.
type Session struct {
	Topic   string
	Index   int
	Correct int
	Total   int
}

// Tracker keeps in-progress quiz sessions keyed by user id. It is safe
// for concurrent use; update delivery is serial today, but nothing here
// should break if that changes.
type Tracker struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{sessions: make(map[int64]*Session)}
}

// Start creates a session for the user at question 0 with zero counters.
// An existing session for the same user is overwritten; selecting a topic
// mid-quiz restarts cleanly and prior unfinished progress is discarded.
func (t *Tracker) Start(userID int64, topic string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[userID] = &Session{Topic: topic}
}

// Get returns a copy of the user's session, if any.
func (t *Tracker) Get(userID int64) (Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[userID]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// Advance records one answered question and moves to the next one.
// It returns the new question index and whether more questions remain
// given the topic's question count.
func (t *Tracker) Advance(userID int64, correct bool, questionCount int) (next int, more bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[userID]
	if !ok {
		return 0, false
	}
	s.Total++
	if correct {
		s.Correct++
	}
	s.Index++
	return s.Index, s.Index < questionCount
}

// Terminate removes the user's session and returns its final counters.
// It is a no-op when no session exists; callers relying on the counters
// must check ok.
func (t *Tracker) Terminate(userID int64) (correct, total int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, exists := t.sessions[userID]
	if !exists {
		return 0, 0, false
	}
	delete(t.sessions, userID)
	return s.Correct, s.Total, true
}
