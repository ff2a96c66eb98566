package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// finishedTest answers "kot" for cat and nothing for dog.
func finishedTest(t *testing.T) *Session {
	t.Helper()

	s, err := Start(parse(t, basics), ModeTest, 2, WithClock(newClock()))
	require.NoError(t, err)
	s.Acknowledge()

	for s.Phase() == PhaseInProgress {
		answer := ""
		if s.CurrentWord() == "cat" {
			answer = "kot"
		}
		_, err := s.Submit(answer)
		require.NoError(t, err)
	}
	return s
}

func TestWriteExport_Template(t *testing.T) {
	t.Parallel()

	s := finishedTest(t)
	pool := s.Pool()

	lines := map[string]string{
		"cat": "cat\tkot\t1\t",
		"dog": "dog\t-\t0\t",
	}
	want := "Start time\n1700000000\n\nCorrect\tAll\n1\t2\n\n" +
		lines[pool[0]] + "1700000001\n" +
		lines[pool[1]] + "1700000002\n"

	var buf strings.Builder
	require.NoError(t, s.WriteExport(&buf))
	assert.Equal(t, want, buf.String())
}

func TestSummary(t *testing.T) {
	t.Parallel()

	summary := finishedTest(t).Summary()

	assert.Equal(t, 1, summary.Correct)
	assert.Equal(t, 2, summary.Total)
	require.Len(t, summary.Rows, 2)

	for _, row := range summary.Rows {
		switch row.Word {
		case "cat":
			assert.Equal(t, "kot", row.Typed)
			assert.Equal(t, "Correct", row.Verdict())
		case "dog":
			assert.Equal(t, EmptyAnswer, row.Typed)
			assert.Equal(t, "Incorrect", row.Verdict())
		default:
			t.Errorf("unexpected row %+v", row)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteExport_WriteFailure(t *testing.T) {
	t.Parallel()

	err := finishedTest(t).WriteExport(failingWriter{})
	assert.ErrorIs(t, err, ErrIO)
	assert.Contains(t, err.Error(), "disk full")
}
