package mission

import (
	"fmt"
	"strings"
)

// Outcome is how a mission ended.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeSuccess
	OutcomeDetected
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeDetected:
		return "detected"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeInProgress:
		return "in_progress"
	default:
		return "unknown"
	}
}

// Debrief summarises a finished mission for the end screen and reports.
type Debrief struct {
	Outcome          Outcome
	Objectives       int
	ObjectivesNeeded int
	FinalDetection   float64
	PeakDetection    float64
	MaxDetection     float64
	TimeRemaining    float64
	Elapsed          float64
	HacksAttempted   int
	HacksFailed      int
	ActionsUsed      [ActionCount]int
	EventsSeen       int
	GuardAlerts      int
	Description      string
}

func (s *Session) buildDebrief(outcome Outcome) Debrief {
	d := Debrief{
		Outcome:          outcome,
		Objectives:       s.progress,
		ObjectivesNeeded: s.cfg.ObjectivesNeeded,
		FinalDetection:   s.detection,
		PeakDetection:    s.stats.peakDetection,
		MaxDetection:     s.cfg.MaxDetection,
		TimeRemaining:    s.timeRemaining,
		Elapsed:          s.elapsed,
		HacksAttempted:   s.stats.hacksAttempted,
		HacksFailed:      s.stats.hacksFailed,
		ActionsUsed:      s.stats.actionsUsed,
		EventsSeen:       s.stats.eventsSeen,
		GuardAlerts:      s.stats.guardAlerts,
	}
	switch outcome {
	case OutcomeSuccess:
		d.Description = fmt.Sprintf("all %d objectives secured with %.0fs to spare", d.ObjectivesNeeded, d.TimeRemaining)
	case OutcomeDetected:
		d.Description = fmt.Sprintf("agent detected after %.1fs with %d/%d objectives", d.Elapsed, d.Objectives, d.ObjectivesNeeded)
	case OutcomeTimeout:
		d.Description = fmt.Sprintf("time ran out with %d/%d objectives", d.Objectives, d.ObjectivesNeeded)
	default:
		d.Description = "mission in progress"
	}
	return d
}

// Title returns the end screen headline.
func (d Debrief) Title() string {
	if d.Outcome == OutcomeSuccess {
		return "MISSION SUCCESS"
	}
	return "MISSION FAILED"
}

// Lines returns the end screen stat lines.
func (d Debrief) Lines() []string {
	return []string{
		fmt.Sprintf("Objectives Completed: %d/%d", d.Objectives, d.ObjectivesNeeded),
		fmt.Sprintf("Final Detection: %d%%", int(d.FinalDetection/d.MaxDetection*100)),
		fmt.Sprintf("Time Remaining: %ds", int(d.TimeRemaining)),
	}
}

// String renders the full debrief, e.g. for the clipboard or a report.
func (d Debrief) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Terminal Infiltration debrief ---\n")
	fmt.Fprintf(&b, "outcome=%s elapsed=%.1fs\n", d.Outcome, d.Elapsed)
	for _, l := range d.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Peak Detection: %.1f\n", d.PeakDetection)
	fmt.Fprintf(&b, "Hacks: %d attempted, %d failed\n", d.HacksAttempted, d.HacksFailed)
	b.WriteString("Actions:")
	for _, a := range Actions() {
		fmt.Fprintf(&b, " %s=%d", a, d.ActionsUsed[a])
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Events: %d  Guard alerts: %d\n", d.EventsSeen, d.GuardAlerts)
	fmt.Fprintf(&b, "%s\n", d.Description)
	return b.String()
}
