package app

import (
	"codeberg.org/langl/langl/internal/collection"
)

// ScreenKind names one of the screens.
type ScreenKind int

const (
	ScreenSetup ScreenKind = iota
	ScreenLearn
	ScreenTest
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenSetup:
		return "setup"
	case ScreenLearn:
		return "learn"
	case ScreenTest:
		return "test"
	default:
		return "unknown"
	}
}

// Op is work that runs outside the event loop. Its returned event is fed
// back into the loop as a single completion.
type Op func() Event

// Action is a request from a screen that only the router can carry out.
type Action interface {
	action()
}

// ChangeScreen switches the current screen.
type ChangeScreen struct{ Screen ScreenKind }

// StartLearn opens the learn screen on a collection.
type StartLearn struct{ Collection *collection.Collection }

// StartTest opens the test screen on a collection.
type StartTest struct {
	Collection *collection.Collection
	Count      int
}

func (ChangeScreen) action() {}
func (StartLearn) action()   {}
func (StartTest) action()    {}

// Result is the outcome of a screen update: Continue with an optional
// pending operation, or Emit an action.
type Result struct {
	op     Op
	action Action
}

// Continue stays on the screen. op may be nil.
func Continue(op Op) Result {
	return Result{op: op}
}

// Emit asks the router to perform a.
func Emit(a Action) Result {
	return Result{action: a}
}

// Op returns the pending operation of a Continue result.
func (r Result) Op() Op {
	return r.op
}

// Action returns the action of an Emit result.
func (r Result) Action() (Action, bool) {
	return r.action, r.action != nil
}
