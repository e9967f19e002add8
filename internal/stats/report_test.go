package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typedrill/internal/model"
)

func TestCharAggregates(t *testing.T) {
	s := newSession(t, "aba b")
	typeString(s, "axa ")
	aggs := CharAggregates(s)
	if len(aggs) != 3 {
		t.Fatalf("expected 3 aggregates, got %+v", aggs)
	}
	want := []model.CharAggregate{
		{Char: " ", Correct: 1},
		{Char: "a", Correct: 2},
		{Char: "b", Incorrect: 1},
	}
	for i, agg := range want {
		if aggs[i] != agg {
			t.Fatalf("aggregate %d = %+v, want %+v", i, aggs[i], agg)
		}
	}
}

func TestSelectWeakChars(t *testing.T) {
	aggs := []model.CharAggregate{
		{Char: "a", Correct: 3, Incorrect: 1},
		{Char: "b", Correct: 1, Incorrect: 1},
		{Char: "c", Correct: 5},
		{Char: "d", Correct: 1, Incorrect: 1},
	}
	weak := SelectWeakChars(aggs, 2)
	if len(weak) != 2 || weak[0] != "b" || weak[1] != "d" {
		t.Fatalf("unexpected weak chars: %v", weak)
	}
	if all := SelectWeakChars(aggs, 0); len(all) != 3 {
		t.Fatalf("expected every missed char, got %v", all)
	}
}

func TestWordAccuracyAndSparkline(t *testing.T) {
	s := newSession(t, "ab cd ef")
	typeString(s, "ab xd e")
	acc := WordAccuracy(s)
	if len(acc) != 3 || acc[0] != 100 || acc[1] != 50 || acc[2] != 100 {
		t.Fatalf("unexpected word accuracy: %v", acc)
	}
	if got := Sparkline(acc); got != "@+@" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestRenderReport(t *testing.T) {
	s := newSession(t, "cat dog")
	typeString(s, "cat dig")
	m := Compute(s, epoch.Add(3*time.Second))

	var buf bytes.Buffer
	if err := RenderReport(&buf, m, s); err != nil {
		t.Fatalf("render report: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"40.0 WPM", "85.7%", "Words per minute", "7/7", "Weakest characters", "o", "Char", "Incorrect"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("report missing %q:\n%s", needle, out)
		}
	}
}

func TestRenderCharTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCharTable(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No characters typed.") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
