package session

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func typeString(s *Session, text string) {
	for _, r := range text {
		s.TypeChar(r)
	}
}

func assertInvariant(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < s.Len(); i++ {
		st := s.State(i)
		if i < s.TypedLength() && st == Untyped {
			t.Fatalf("index %d below typed length %d is untyped", i, s.TypedLength())
		}
		if i >= s.TypedLength() && st != Untyped {
			t.Fatalf("index %d at/after typed length %d is %v", i, s.TypedLength(), st)
		}
	}
}

func TestNewRejectsEmptyText(t *testing.T) {
	if _, err := New("", nil); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestTypeCharClassifies(t *testing.T) {
	s, err := New("ab", nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out := s.TypeChar('a')
	if !out.Changed || out.Index != 0 || out.State != Correct || out.Complete {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	out = s.TypeChar('x')
	if out.Index != 1 || out.State != Incorrect || !out.Complete {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if !s.IsComplete() {
		t.Fatalf("expected session to be complete")
	}
	assertInvariant(t, s)
}

func TestTypeCharPastEndSignalsComplete(t *testing.T) {
	s, _ := New("a", nil)
	s.TypeChar('a')
	out := s.TypeChar('b')
	if out.Changed || !out.Complete || out.Index != -1 {
		t.Fatalf("expected complete signal without change, got %+v", out)
	}
	if s.TypedLength() != 1 {
		t.Fatalf("typed length moved past end: %d", s.TypedLength())
	}
}

func TestStartedAtSetOnFirstKeystroke(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	s, _ := New("abc", func() time.Time { return now })
	if _, ok := s.StartedAt(); ok {
		t.Fatalf("expected session to be unstarted")
	}
	s.TypeChar('a')
	now = start.Add(time.Minute)
	s.TypeChar('b')
	got, ok := s.StartedAt()
	if !ok || !got.Equal(start) {
		t.Fatalf("expected startedAt %v, got %v (ok=%v)", start, got, ok)
	}
}

func TestBackspaceRoundTrip(t *testing.T) {
	s, _ := New("hello world", fixedClock(time.Unix(0, 0)))
	typeString(s, "helxo")
	before := make([]CharState, s.Len())
	for i := range before {
		before[i] = s.State(i)
	}
	typedBefore := s.TypedLength()

	for _, r := range []rune{' ', 'q', 'w'} {
		s.TypeChar(r)
		idx, ok := s.Backspace()
		if !ok || idx != typedBefore {
			t.Fatalf("backspace returned (%d, %v), want (%d, true)", idx, ok, typedBefore)
		}
		if s.TypedLength() != typedBefore {
			t.Fatalf("typed length %d, want %d", s.TypedLength(), typedBefore)
		}
		for i := range before {
			if s.State(i) != before[i] {
				t.Fatalf("state %d = %v, want %v", i, s.State(i), before[i])
			}
		}
	}
}

func TestBackspaceAtZeroIsNoop(t *testing.T) {
	s, _ := New("abc", nil)
	if idx, ok := s.Backspace(); ok || idx != -1 {
		t.Fatalf("expected no-op, got (%d, %v)", idx, ok)
	}
	if s.TypedLength() != 0 {
		t.Fatalf("typed length changed: %d", s.TypedLength())
	}
	assertInvariant(t, s)
}

func TestRetypeReevaluatesAgainstTarget(t *testing.T) {
	s, _ := New("a", nil)
	for i := 0; i < 3; i++ {
		if out := s.TypeChar('x'); out.State != Incorrect {
			t.Fatalf("round %d: expected incorrect, got %v", i, out.State)
		}
		s.Backspace()
		if out := s.TypeChar('a'); out.State != Correct {
			t.Fatalf("round %d: expected correct, got %v", i, out.State)
		}
		s.Backspace()
	}
}

func TestFinishFreezes(t *testing.T) {
	s, _ := New("abc", nil)
	s.TypeChar('a')
	s.Finish()
	s.Finish()
	if !s.Finished() {
		t.Fatalf("expected finished")
	}
	if out := s.TypeChar('b'); out.Changed {
		t.Fatalf("type after finish changed state: %+v", out)
	}
	if _, ok := s.Backspace(); ok {
		t.Fatalf("backspace after finish changed state")
	}
	if s.TypedLength() != 1 {
		t.Fatalf("typed length changed after finish: %d", s.TypedLength())
	}
}

func TestCatDogScenario(t *testing.T) {
	s, _ := New("cat dog", nil)
	typeString(s, "cat d")
	if s.TypedLength() != 5 || s.CorrectCount() != 5 {
		t.Fatalf("after prefix: typed %d correct %d", s.TypedLength(), s.CorrectCount())
	}
	s.Backspace()
	s.Backspace()
	if s.TypedLength() != 3 {
		t.Fatalf("after backspaces: typed %d", s.TypedLength())
	}
	typeString(s, "X g")
	want := []CharState{Correct, Correct, Correct, Incorrect, Incorrect, Incorrect, Untyped}
	for i, st := range want {
		if s.State(i) != st {
			t.Fatalf("state %d = %v, want %v", i, s.State(i), st)
		}
	}
	if s.TypedLength() != 6 {
		t.Fatalf("expected typed length 6, got %d", s.TypedLength())
	}
	if s.CorrectCount() != 3 {
		t.Fatalf("expected 3 correct, got %d", s.CorrectCount())
	}
}

func TestRandomOpsKeepInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	s, _ := New("the quick brown fox", nil)
	for i := 0; i < 2000; i++ {
		if rnd.Intn(3) == 0 {
			s.Backspace()
		} else {
			s.TypeChar(rune('a' + rnd.Intn(27)))
		}
		assertInvariant(t, s)
	}
}

func TestRuneAndStateOutOfRange(t *testing.T) {
	s, _ := New("ab", nil)
	if s.Rune(-1) != 0 || s.Rune(2) != 0 {
		t.Fatalf("expected zero rune out of range")
	}
	if s.State(5) != Untyped {
		t.Fatalf("expected untyped out of range")
	}
	if s.Text() != "ab" {
		t.Fatalf("unexpected text %q", s.Text())
	}
}
