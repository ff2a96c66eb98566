package session

import (
	"fmt"
	"strings"
)

// Mode selects the flow of a session.
type Mode int

const (
	// ModeLearn drills every word of the collection without end.
	ModeLearn Mode = iota
	// ModeTest asks a random subset once and records the answers.
	ModeTest
)

// ParseMode converts "learn" or "test" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "learn":
		return ModeLearn, nil
	case "test":
		return ModeTest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeLearn:
		return "learn"
	case ModeTest:
		return "test"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}

// Phase is the position of a session in its state machine.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseFinished
	PhaseAwaitingAnswer
	PhaseShowingFeedback
	// PhaseClosed is entered on cancel or exit; the session accepts no
	// further commands.
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	case PhaseAwaitingAnswer:
		return "awaiting answer"
	case PhaseShowingFeedback:
		return "showing feedback"
	case PhaseClosed:
		return "closed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Feedback is the verdict on the last Learn mode answer.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "Correct"
	case FeedbackIncorrect:
		return "Incorrect"
	default:
		return ""
	}
}
