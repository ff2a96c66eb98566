package session

import (
	"fmt"
	"math/rand"
	"time"

	"codeberg.org/langl/langl/internal/collection"
)

// Clock supplies submission and start timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Answer is one Test mode submission.
type Answer struct {
	Word        string
	Typed       string
	Correct     bool
	SubmittedAt time.Time
}

// Notice reports that a Test was shortened to the size of the collection.
type Notice struct {
	Requested int
	Granted   int
}

func (n Notice) String() string {
	return fmt.Sprintf("there are not enough words in the collection: requested %d, using %d", n.Requested, n.Granted)
}

// Step tells the caller whether the session is still running after a command.
type Step int

const (
	// StepStay keeps the session on screen.
	StepStay Step = iota
	// StepExit returns to setup; the session is closed.
	StepExit
)

// Option configures a session at Start.
type Option func(*Session)

// WithRand sets the random source used for Test mode sampling.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rand = r }
}

// WithClock sets the clock used for timestamps.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// Session is the transient state of one Learn or Test run. It is not safe
// for concurrent use; commands are applied one at a time by the caller.
type Session struct {
	coll      *collection.Collection
	mode      Mode
	pool      []string
	cursor    int
	phase     Phase
	feedback  Feedback
	answers   []Answer
	startedAt time.Time
	notice    *Notice

	rand  *rand.Rand
	clock Clock
}

// Start creates a session over c. Learn mode uses every word in definition
// order. Test mode draws min(requested, c.Len()) distinct words; asking for
// more than exist is not an error and leaves a Notice.
func Start(c *collection.Collection, mode Mode, requested int, opts ...Option) (*Session, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrNoWords
	}

	s := &Session{
		coll:  c,
		mode:  mode,
		clock: systemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch mode {
	case ModeLearn:
		s.pool = c.Words()
		s.phase = PhaseAwaitingAnswer
	case ModeTest:
		if requested <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidCount, requested)
		}
		granted := requested
		if granted > c.Len() {
			granted = c.Len()
			s.notice = &Notice{Requested: requested, Granted: granted}
		}
		s.pool = sample(s.rand, c.Words(), granted)
		s.phase = PhaseNotStarted
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	return s, nil
}

// sample picks n distinct keys uniformly without replacement.
func sample(r *rand.Rand, keys []string, n int) []string {
	picked := make([]string, 0, n)
	for _, i := range r.Perm(len(keys))[:n] {
		picked = append(picked, keys[i])
	}
	return picked
}

func (s *Session) Collection() *collection.Collection { return s.coll }
func (s *Session) Mode() Mode                         { return s.mode }
func (s *Session) Phase() Phase                       { return s.phase }
func (s *Session) Cursor() int                        { return s.cursor }
func (s *Session) Feedback() Feedback                 { return s.feedback }
func (s *Session) StartedAt() time.Time               { return s.startedAt }

// Notice returns the clamping notice produced by Start, if any.
func (s *Session) Notice() (Notice, bool) {
	if s.notice == nil {
		return Notice{}, false
	}
	return *s.notice, true
}

// Pool returns the selected words in presentation order.
func (s *Session) Pool() []string {
	pool := make([]string, len(s.pool))
	copy(pool, s.pool)
	return pool
}

// CurrentWord returns the word being asked.
func (s *Session) CurrentWord() string {
	return s.pool[s.cursor]
}

// Answers returns the Test mode submissions in order.
func (s *Session) Answers() []Answer {
	answers := make([]Answer, len(s.answers))
	copy(answers, s.answers)
	return answers
}

// Check reports whether typed is literally one of the meanings of word.
func (s *Session) Check(word, typed string) bool {
	return s.coll.Accepts(word, typed)
}

// Submit answers the current word and returns whether it was correct.
//
// In Learn mode an empty answer is ignored with ErrEmptyAnswer; otherwise
// the verdict is shown and the cursor moves on, wrapping at the end. In
// Test mode every answer, empty ones included, is recorded and the session
// finishes after the last word.
func (s *Session) Submit(typed string) (bool, error) {
	switch s.phase {
	case PhaseAwaitingAnswer:
		if typed == "" {
			return false, ErrEmptyAnswer
		}
		correct := s.Check(s.CurrentWord(), typed)
		s.feedback = FeedbackIncorrect
		if correct {
			s.feedback = FeedbackCorrect
		}
		s.phase = PhaseShowingFeedback
		s.cursor = (s.cursor + 1) % len(s.pool)
		return correct, nil

	case PhaseInProgress:
		word := s.CurrentWord()
		correct := s.Check(word, typed)
		s.answers = append(s.answers, Answer{
			Word:        word,
			Typed:       typed,
			Correct:     correct,
			SubmittedAt: s.clock.Now(),
		})
		if s.cursor == len(s.pool)-1 {
			s.phase = PhaseFinished
		} else {
			s.cursor++
		}
		return correct, nil

	default:
		return false, fmt.Errorf("%w: submit while %s", ErrWrongPhase, s.phase)
	}
}

// Acknowledge is the Enter key: it dismisses Learn feedback, starts a Test
// or leaves a finished Test. It is a no-op in the other phases.
func (s *Session) Acknowledge() Step {
	switch s.phase {
	case PhaseShowingFeedback:
		s.feedback = FeedbackNone
		s.phase = PhaseAwaitingAnswer
	case PhaseNotStarted:
		s.startedAt = s.clock.Now()
		s.phase = PhaseInProgress
	case PhaseFinished:
		s.close()
		return StepExit
	case PhaseClosed:
		return StepExit
	}
	return StepStay
}

// Cancel is the Escape key: the session closes from any phase and any
// recorded answers are discarded.
func (s *Session) Cancel() Step {
	s.close()
	return StepExit
}

func (s *Session) close() {
	s.phase = PhaseClosed
	s.feedback = FeedbackNone
	s.answers = nil
}
