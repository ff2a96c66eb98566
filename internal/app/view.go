package app

import (
	"time"

	"codeberg.org/langl/langl/internal/session"
)

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// View is a plain snapshot of what should be on screen.
type View struct {
	Screen  ScreenKind
	Notices []string
	Setup   SetupView
	Learn   LearnView
	Test    TestView
}

// CollectionItem is one entry of the setup screen's collection list.
type CollectionItem struct {
	ID    int
	Title string
	Words int
}

type SetupView struct {
	Collections []CollectionItem
	SelectedID  int
	Mode        session.Mode
	WordCount   int
	Loading     bool
}

type LearnView struct {
	Collection string
	Word       string
	Feedback   session.Feedback
}

type TestView struct {
	Collection string
	Phase      session.Phase
	Word       string
	Number     int
	Total      int
	Summary    session.Summary
}

// View returns the current state for rendering.
func (a *App) View() View {
	v := View{
		Screen:  a.current,
		Notices: append([]string(nil), a.notices...),
		Setup:   a.setup.view(),
	}
	switch a.current {
	case ScreenLearn:
		v.Learn = a.learn.view()
	case ScreenTest:
		v.Test = a.test.view()
	}
	return v
}
