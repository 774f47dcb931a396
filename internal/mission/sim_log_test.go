package mission

import (
	"strings"
	"testing"
)

func sampleLog() *SimLog {
	sl := NewSimLog(false)
	sl.Add(1, 0.1, "--", "mission", "start", "objectives=5", 0)
	sl.Add(10, 1.0, "G1", "guard", "alert", "spotted movement at choke point", 0.5)
	sl.Add(20, 2.0, "hack", "hack", "failed", "intrusion flagged", 8)
	sl.Add(30, 3.0, "G1", "guard", "alert", "spotted movement at choke point", 0.45)
	return sl
}

func TestSimLog_Filter(t *testing.T) {
	sl := sampleLog()
	if got := len(sl.Filter("guard", "")); got != 2 {
		t.Fatalf("expected 2 guard entries, got %d", got)
	}
	if got := len(sl.Filter("", "failed")); got != 1 {
		t.Fatalf("expected 1 failed entry, got %d", got)
	}
	if got := len(sl.FilterSubject("G1")); got != 2 {
		t.Fatalf("expected 2 G1 entries, got %d", got)
	}
	if got := len(sl.FilterTickRange(10, 20)); got != 2 {
		t.Fatalf("expected 2 entries in ticks 10-20, got %d", got)
	}
}

func TestSimLog_LastOf(t *testing.T) {
	sl := sampleLog()
	e, ok := sl.LastOf("guard", "alert")
	if !ok || e.Tick != 30 {
		t.Fatalf("expected last alert at tick 30, got %+v %v", e, ok)
	}
	if _, ok := sl.LastOf("event", "start"); ok {
		t.Fatal("expected no event entries")
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, 0, "--", "detection", "level", "1.00", 1)
	if quiet.Len() != 0 {
		t.Fatal("verbose entry recorded with verbose off")
	}
	loud := NewSimLog(true)
	loud.AddVerbose(1, 0, "--", "detection", "level", "1.00", 1)
	if loud.Len() != 1 {
		t.Fatal("verbose entry dropped with verbose on")
	}
}

func TestSimLog_SinceAndReset(t *testing.T) {
	sl := sampleLog()
	if got := len(sl.Since(2)); got != 2 {
		t.Fatalf("expected 2 entries since index 2, got %d", got)
	}
	if sl.Since(10) != nil {
		t.Fatal("expected nil past the end")
	}
	sl.Reset()
	if sl.Len() != 0 || sl.HasEntry("", "", "") {
		t.Fatal("reset log should be empty")
	}
}

func TestSimLog_ResetStartsNewGeneration(t *testing.T) {
	sl := sampleLog()
	before := sl.Entries()
	first := before[0]
	gen := sl.Generation()

	sl.Reset()
	sl.Add(1, 0.1, "hack", "hack", "failed", "after reset", 8)

	if sl.Generation() != gen+1 {
		t.Fatalf("expected generation %d, got %d", gen+1, sl.Generation())
	}
	if before[0] != first {
		t.Fatalf("expected an earlier Entries slice to keep its contents, got %v", before[0])
	}
}

func TestSimLog_Format(t *testing.T) {
	sl := sampleLog()
	out := sl.Format()
	if strings.Count(out, "\n") != 4 {
		t.Fatalf("expected 4 lines, got:\n%s", out)
	}
	if !strings.HasPrefix(out, "[T=000.1] --") {
		t.Fatalf("unexpected line format:\n%s", out)
	}
	if !strings.Contains(sl.FormatRange(20, 20), "intrusion flagged") {
		t.Fatal("range format missing the hack entry")
	}
}
