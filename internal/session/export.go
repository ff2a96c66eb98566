package session

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"
)

// EmptyAnswer is shown in summaries and exports in place of a blank answer.
const EmptyAnswer = "-"

// SummaryRow is one line of the finished Test table.
type SummaryRow struct {
	Word    string
	Typed   string
	Correct bool
}

// Verdict returns "Correct" or "Incorrect".
func (r SummaryRow) Verdict() string {
	if r.Correct {
		return FeedbackCorrect.String()
	}
	return FeedbackIncorrect.String()
}

// Summary is the result table and tally of a Test.
type Summary struct {
	Rows    []SummaryRow
	Correct int
	Total   int
}

// Summary builds the result table from the recorded answers.
func (s *Session) Summary() Summary {
	summary := Summary{Total: len(s.answers)}
	for _, a := range s.answers {
		summary.Rows = append(summary.Rows, SummaryRow{
			Word:    a.Word,
			Typed:   displayAnswer(a.Typed),
			Correct: a.Correct,
		})
		if a.Correct {
			summary.Correct++
		}
	}
	return summary
}

func displayAnswer(typed string) string {
	if typed == "" {
		return EmptyAnswer
	}
	return typed
}

// SuggestedExportName is the default file name for a results export.
func SuggestedExportName(now time.Time) string {
	return fmt.Sprintf("test_save-%d.txt", now.Unix())
}

// WriteExport writes the tab separated results log of a finished Test.
func (s *Session) WriteExport(w io.Writer) error {
	if s.phase != PhaseFinished {
		return fmt.Errorf("%w: export while %s", ErrWrongPhase, s.phase)
	}

	var buf bytes.Buffer
	summary := s.Summary()

	fmt.Fprintf(&buf, "Start time\n%d\n\n", s.startedAt.Unix())
	fmt.Fprintf(&buf, "Correct\tAll\n%d\t%d\n\n", summary.Correct, summary.Total)
	for _, a := range s.answers {
		correct := 0
		if a.Correct {
			correct = 1
		}
		fmt.Fprintf(&buf, "%s\t%s\t%d\t%d\n", a.Word, displayAnswer(a.Typed), correct, a.SubmittedAt.Unix())
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// SaveExport writes the results log to path. It is attempted once; a
// failure is returned and nothing is retried.
func (s *Session) SaveExport(path string) error {
	if s.phase != PhaseFinished {
		return fmt.Errorf("%w: export while %s", ErrWrongPhase, s.phase)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := s.WriteExport(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
