package app

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"codeberg.org/langl/langl/internal/collection"
	"codeberg.org/langl/langl/internal/session"
)

// Config holds everything the router needs.
type Config struct {
	Loader     *collection.Loader
	Logger     *zap.Logger
	ResultsDir string
	Mode       session.Mode
	WordCount  int
	// InitialDir is scanned as soon as Run starts, if set.
	InitialDir string
	Rand       *rand.Rand
	Clock      session.Clock
}

// Renderer displays the state after every processed event.
type Renderer interface {
	Render(v View)
}

// App owns the screens and the current-screen discriminant. All methods
// must be called from the goroutine that runs the event loop.
type App struct {
	cfg     Config
	log     *zap.Logger
	current ScreenKind
	notices []string

	setup setupScreen
	learn learnScreen
	test  testScreen
}

// New creates an App showing the setup screen.
func New(cfg Config) *App {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Loader == nil {
		cfg.Loader = collection.NewLoader(cfg.Logger)
	}
	if cfg.Clock == nil {
		cfg.Clock = wallClock{}
	}

	a := &App{cfg: cfg, log: cfg.Logger}
	a.setup = setupScreen{
		loader: cfg.Loader,
		log:    cfg.Logger,
		notify: a.notify,
		mode:   cfg.Mode,
		count:  clampWordCount(cfg.WordCount),
	}
	a.learn = learnScreen{notify: a.notify}
	a.test = testScreen{
		resultsDir: cfg.ResultsDir,
		clock:      cfg.Clock,
		log:        cfg.Logger,
		notify:     a.notify,
	}
	return a
}

// Current returns the screen on display.
func (a *App) Current() ScreenKind {
	return a.current
}

func (a *App) notify(msg string) {
	a.notices = append(a.notices, msg)
}

// Handle processes one event to completion and returns the pending
// operation it started, if any.
func (a *App) Handle(ev Event) Op {
	a.notices = nil

	// A finished scan always belongs to the setup screen, even if the user
	// has moved on meanwhile.
	if _, ok := ev.(CollectionsLoaded); ok {
		return a.apply(a.setup.Update(ev))
	}

	switch a.current {
	case ScreenLearn:
		return a.apply(a.learn.Update(ev))
	case ScreenTest:
		return a.apply(a.test.Update(ev))
	default:
		return a.apply(a.setup.Update(ev))
	}
}

func (a *App) apply(r Result) Op {
	action, ok := r.Action()
	if !ok {
		return r.Op()
	}

	switch action := action.(type) {
	case ChangeScreen:
		a.current = action.Screen
	case StartLearn:
		s, err := session.Start(action.Collection, session.ModeLearn, 0, a.sessionOptions()...)
		if err != nil {
			a.notify(err.Error())
			return nil
		}
		a.learn.session = s
		a.current = ScreenLearn
		a.log.Info("learn session started", zap.Int("collection", action.Collection.ID()), zap.Int("words", len(s.Pool())))
	case StartTest:
		s, err := session.Start(action.Collection, session.ModeTest, action.Count, a.sessionOptions()...)
		if err != nil {
			a.notify(err.Error())
			return nil
		}
		if notice, clamped := s.Notice(); clamped {
			a.notify(notice.String())
		}
		a.test.session = s
		a.current = ScreenTest
		a.log.Info("test session started", zap.Int("collection", action.Collection.ID()), zap.Int("words", len(s.Pool())))
	}
	return nil
}

func (a *App) sessionOptions() []session.Option {
	opts := []session.Option{session.WithClock(a.cfg.Clock)}
	if a.cfg.Rand != nil {
		opts = append(opts, session.WithRand(a.cfg.Rand))
	}
	return opts
}

// Run is the event loop. Events from input and completions of pending
// operations are handled one at a time; the state is rendered after each.
// Run returns when input is closed or ctx is done.
func (a *App) Run(ctx context.Context, input <-chan Event, r Renderer) error {
	done := make(chan Event, 1)
	dispatch := func(ev Event) {
		if op := a.Handle(ev); op != nil {
			go func() { done <- op() }()
		}
	}

	if a.cfg.InitialDir != "" {
		dispatch(LoadDirectory{Dir: a.cfg.InitialDir})
	}
	r.Render(a.View())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-input:
			if !ok {
				return nil
			}
			dispatch(ev)
		case ev := <-done:
			dispatch(ev)
		}
		r.Render(a.View())
	}
}
