package mission

// Tone tells the renderer how to colour a feedback message.
type Tone int

const (
	ToneInfo Tone = iota
	TonePositive
	ToneNegative
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneNegative:
		return "negative"
	default:
		return "info"
	}
}

// Feedback is a transient message shown to the player, oldest first.
type Feedback struct {
	Text     string
	Tone     Tone
	TimeLeft float64
}

func (s *Session) pushFeedback(text string, tone Tone) {
	s.feedback = append(s.feedback, Feedback{Text: text, Tone: tone, TimeLeft: s.cfg.FeedbackLifetime})
}

// tickFeedback ages every message and drops the expired ones, keeping order.
func (s *Session) tickFeedback(dt float64) {
	kept := s.feedback[:0]
	for _, f := range s.feedback {
		f.TimeLeft -= dt
		if f.TimeLeft > 0 {
			kept = append(kept, f)
		}
	}
	s.feedback = kept
}
