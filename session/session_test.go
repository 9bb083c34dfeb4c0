package session

import "testing"

func TestStartCreatesFreshSession(t *testing.T) {
	tr := NewTracker()
	tr.Start(1, "Логика")

	s, ok := tr.Get(1)
	if !ok {
		t.Fatal("expected session after Start")
	}
	if s.Topic != "Логика" || s.Index != 0 || s.Correct != 0 || s.Total != 0 {
		t.Errorf("unexpected initial session: %+v", s)
	}
}

func TestStartOverwritesExistingSession(t *testing.T) {
	tr := NewTracker()
	tr.Start(1, "Логика")
	tr.Advance(1, true, 3)

	tr.Start(1, "Файлы")

	s, ok := tr.Get(1)
	if !ok {
		t.Fatal("expected session after restart")
	}
	if s.Topic != "Файлы" {
		t.Errorf("expected topic to be replaced, got %q", s.Topic)
	}
	if s.Index != 0 || s.Correct != 0 || s.Total != 0 {
		t.Errorf("expected counters reset on overwrite, got %+v", s)
	}
}

func TestAdvanceCountsAndReportsRemaining(t *testing.T) {
	tr := NewTracker()
	tr.Start(7, "Информатика")

	next, more := tr.Advance(7, true, 2)
	if next != 1 || !more {
		t.Errorf("after first answer: next=%d more=%v, want 1 true", next, more)
	}

	next, more = tr.Advance(7, false, 2)
	if next != 2 || more {
		t.Errorf("after last answer: next=%d more=%v, want 2 false", next, more)
	}

	correct, total, ok := tr.Terminate(7)
	if !ok {
		t.Fatal("expected session to terminate")
	}
	if correct != 1 || total != 2 {
		t.Errorf("final counters: %d/%d, want 1/2", correct, total)
	}
}

func TestAdvanceWithoutSession(t *testing.T) {
	tr := NewTracker()
	if next, more := tr.Advance(42, true, 5); next != 0 || more {
		t.Errorf("Advance without session: next=%d more=%v, want 0 false", next, more)
	}
}

func TestTerminateRemovesSession(t *testing.T) {
	tr := NewTracker()
	tr.Start(1, "Файлы")

	if _, _, ok := tr.Terminate(1); !ok {
		t.Fatal("expected first Terminate to succeed")
	}
	if _, ok := tr.Get(1); ok {
		t.Error("session should be gone after Terminate")
	}
	if _, _, ok := tr.Terminate(1); ok {
		t.Error("second Terminate should report no session")
	}
}

func TestSessionsAreIndependentPerUser(t *testing.T) {
	tr := NewTracker()
	tr.Start(1, "Логика")
	tr.Start(2, "Файлы")

	tr.Advance(1, true, 3)

	s2, ok := tr.Get(2)
	if !ok {
		t.Fatal("expected session for second user")
	}
	if s2.Total != 0 || s2.Index != 0 {
		t.Errorf("second user's session was touched: %+v", s2)
	}
}
