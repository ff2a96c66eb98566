package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"codeberg.org/langl/langl/internal/session"
)

type learnScreen struct {
	session *session.Session
	notify  func(string)
}

func (s *learnScreen) Update(ev Event) Result {
	if s.session == nil {
		return Emit(ChangeScreen{Screen: ScreenSetup})
	}

	switch ev := ev.(type) {
	case Submit:
		// Empty answers are ignored in learn mode.
		if _, err := s.session.Submit(ev.Text); err != nil && !errors.Is(err, session.ErrEmptyAnswer) {
			s.notify(err.Error())
		}
	case Acknowledge:
		s.session.Acknowledge()
	case Cancel:
		s.session.Cancel()
		s.session = nil
		return Emit(ChangeScreen{Screen: ScreenSetup})
	}
	return Continue(nil)
}

func (s *learnScreen) view() LearnView {
	if s.session == nil {
		return LearnView{}
	}
	return LearnView{
		Collection: s.session.Collection().String(),
		Word:       s.session.CurrentWord(),
		Feedback:   s.session.Feedback(),
	}
}

type testScreen struct {
	session    *session.Session
	resultsDir string
	clock      session.Clock
	log        *zap.Logger
	notify     func(string)
}

func (s *testScreen) Update(ev Event) Result {
	if s.session == nil {
		return Emit(ChangeScreen{Screen: ScreenSetup})
	}

	switch ev := ev.(type) {
	case Submit:
		if _, err := s.session.Submit(ev.Text); err != nil {
			s.notify(err.Error())
		}
	case Acknowledge:
		switch s.session.Phase() {
		case session.PhaseInProgress:
			// Enter on an empty input submits an empty answer.
			if _, err := s.session.Submit(""); err != nil {
				s.notify(err.Error())
			}
		default:
			if s.session.Acknowledge() == session.StepExit {
				s.session = nil
				return Emit(ChangeScreen{Screen: ScreenSetup})
			}
		}
	case Cancel:
		s.session.Cancel()
		s.session = nil
		return Emit(ChangeScreen{Screen: ScreenSetup})
	case Save:
		s.save(ev.Path)
	}
	return Continue(nil)
}

func (s *testScreen) save(path string) {
	if s.session.Phase() != session.PhaseFinished {
		s.notify("results can only be saved after the test is finished")
		return
	}

	if path == "" {
		if err := os.MkdirAll(s.resultsDir, 0755); err != nil {
			s.log.Error("failed to create results directory", zap.String("dir", s.resultsDir), zap.Error(err))
			s.notify(fmt.Sprintf("failed to save results: %v", err))
			return
		}
		path = filepath.Join(s.resultsDir, session.SuggestedExportName(s.clock.Now()))
	}

	if err := s.session.SaveExport(path); err != nil {
		s.log.Error("failed to save results", zap.String("path", path), zap.Error(err))
		s.notify(fmt.Sprintf("failed to save results: %v", err))
		return
	}
	s.log.Info("results saved", zap.String("path", path))
	s.notify(fmt.Sprintf("results saved to %s", path))
}

func (s *testScreen) view() TestView {
	if s.session == nil {
		return TestView{}
	}

	v := TestView{
		Collection: s.session.Collection().String(),
		Phase:      s.session.Phase(),
		Number:     s.session.Cursor() + 1,
		Total:      len(s.session.Pool()),
	}
	switch v.Phase {
	case session.PhaseInProgress:
		v.Word = s.session.CurrentWord()
	case session.PhaseFinished:
		v.Summary = s.session.Summary()
	}
	return v
}
