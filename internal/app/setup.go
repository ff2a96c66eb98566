package app

import (
	"fmt"

	"go.uber.org/zap"

	"codeberg.org/langl/langl/internal/collection"
	"codeberg.org/langl/langl/internal/session"
)

// Bounds of the Test word count offered on the setup screen.
const (
	MinWordCount = 5
	MaxWordCount = 30
)

type setupScreen struct {
	loader      *collection.Loader
	log         *zap.Logger
	notify      func(string)
	collections []*collection.Collection
	selected    *collection.Collection
	mode        session.Mode
	count       int
	loading     bool
}

func (s *setupScreen) Update(ev Event) Result {
	switch ev := ev.(type) {
	case LoadDirectory:
		// Only one scan may be in flight.
		if s.loading {
			s.notify("a collection directory is already being loaded")
			return Continue(nil)
		}
		s.loading = true
		loader, dir := s.loader, ev.Dir
		return Continue(func() Event {
			collections, err := loader.LoadDir(dir)
			return CollectionsLoaded{Dir: dir, Collections: collections, Err: err}
		})

	case CollectionsLoaded:
		s.loading = false
		if ev.Err != nil {
			s.log.Warn("failed to load collections", zap.String("dir", ev.Dir), zap.Error(ev.Err))
			s.notify(fmt.Sprintf("failed to load collections: %v", ev.Err))
			return Continue(nil)
		}
		if len(ev.Collections) == 0 {
			s.notify(fmt.Sprintf("no collections found in %s", ev.Dir))
			return Continue(nil)
		}
		s.collections = ev.Collections
		if s.selected == nil {
			s.selected = ev.Collections[0]
		}
		s.notify(fmt.Sprintf("loaded %d collections from %s", len(ev.Collections), ev.Dir))

	case SelectCollection:
		for _, c := range s.collections {
			if c.ID() == ev.ID {
				s.selected = c
				return Continue(nil)
			}
		}
		s.notify(fmt.Sprintf("no collection with id %d", ev.ID))

	case SelectMode:
		s.mode = ev.Mode

	case SelectWordCount:
		s.count = clampWordCount(ev.Count)
		if s.count != ev.Count {
			s.notify(fmt.Sprintf("word count must be between %d and %d, using %d", MinWordCount, MaxWordCount, s.count))
		}

	case StartSession:
		switch {
		case s.selected == nil:
			s.notify("no collection selected")
		case s.selected.Len() == 0:
			s.notify(fmt.Sprintf("collection %q has no words", s.selected))
		case s.mode == session.ModeTest:
			return Emit(StartTest{Collection: s.selected, Count: s.count})
		default:
			return Emit(StartLearn{Collection: s.selected})
		}
	}

	return Continue(nil)
}

func (s *setupScreen) view() SetupView {
	v := SetupView{
		Mode:      s.mode,
		WordCount: s.count,
		Loading:   s.loading,
	}
	if s.selected != nil {
		v.SelectedID = s.selected.ID()
	}
	for _, c := range s.collections {
		v.Collections = append(v.Collections, CollectionItem{
			ID:    c.ID(),
			Title: c.String(),
			Words: c.Len(),
		})
	}
	return v
}

func clampWordCount(n int) int {
	return max(MinWordCount, min(n, MaxWordCount))
}
