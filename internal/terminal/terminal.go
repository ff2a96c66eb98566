// Package terminal is a line-oriented front end for the app router. Each
// input line becomes one event and every view is printed as plain text.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"codeberg.org/langl/langl/internal/app"
	"codeberg.org/langl/langl/internal/session"
)

// Commands start with this prefix; anything else is an answer.
const commandPrefix = ":"

// UnknownCommandError is returned by ParseLine for unrecognised commands.
type UnknownCommandError struct {
	Line string
}

func (e UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q, type :help", e.Line)
}

// Terminal reads commands from in and renders views to out.
type Terminal struct {
	in  io.Reader
	out io.Writer
	mu  sync.Mutex
}

// New creates a terminal over the given streams.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Events reads lines until EOF, :quit or ctx is done, then closes the
// returned channel.
func (t *Terminal) Events(ctx context.Context) <-chan app.Event {
	events := make(chan app.Event)

	go func() {
		defer close(events)

		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			ev, quit, err := ParseLine(scanner.Text())
			if quit {
				return
			}
			if err != nil {
				t.printf("%v\n", err)
				continue
			}
			if ev == nil {
				t.printf("%s", helpText)
				continue
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events
}

// printf serialises writes from the reader goroutine and the renderer.
func (t *Terminal) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format, args...)
}

const helpText = `Setup:
  :load <dir>      load collections from a directory
  :select <id>     choose a collection
  :mode learn|test choose the work mode
  :words <n>       words per test (5-30)
  :start           start the session
Session:
  <text>           answer (start with "::" to answer text beginning with ':')
  <empty line>     Enter: continue / start / finish
  :esc             leave the session without saving
  :save [path]     save finished test results
  :quit            exit
`

// ParseLine converts one input line. A nil event with a nil error means
// help was requested.
func ParseLine(line string) (app.Event, bool, error) {
	line = strings.TrimSuffix(line, "\r")

	if strings.HasPrefix(line, commandPrefix+commandPrefix) {
		return app.Submit{Text: line[len(commandPrefix):]}, false, nil
	}
	if !strings.HasPrefix(strings.TrimSpace(line), commandPrefix) {
		if line == "" {
			return app.Acknowledge{}, false, nil
		}
		// Answers are passed on verbatim.
		return app.Submit{Text: line}, false, nil
	}

	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), commandPrefix))
	if len(fields) == 0 {
		return nil, false, UnknownCommandError{Line: line}
	}
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), commandPrefix+fields[0]))

	switch fields[0] {
	case "quit", "q":
		return nil, true, nil
	case "help", "h":
		return nil, false, nil
	case "esc":
		return app.Cancel{}, false, nil
	case "start":
		return app.StartSession{}, false, nil
	case "save":
		return app.Save{Path: arg}, false, nil
	case "load":
		if arg == "" {
			return nil, false, fmt.Errorf("usage: :load <dir>")
		}
		return app.LoadDirectory{Dir: arg}, false, nil
	case "mode":
		mode, err := session.ParseMode(arg)
		if err != nil {
			return nil, false, err
		}
		return app.SelectMode{Mode: mode}, false, nil
	case "select", "words":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, false, fmt.Errorf("usage: :%s <number>", fields[0])
		}
		if fields[0] == "select" {
			return app.SelectCollection{ID: n}, false, nil
		}
		return app.SelectWordCount{Count: n}, false, nil
	default:
		return nil, false, UnknownCommandError{Line: line}
	}
}
