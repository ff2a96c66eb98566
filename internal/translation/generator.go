package translation

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/langl/langl/internal/batch"
	"codeberg.org/langl/langl/internal/collection"
)

// GenerateOptions describes the collection to build.
type GenerateOptions struct {
	Name     string
	Language string
}

// GenerateResult is the outcome of Generate.
type GenerateResult struct {
	Collection *collection.Collection
	Translated int
	// Skipped lists words left out because they could not be translated
	// or are not valid collection words.
	Skipped []string
}

// Generator builds collections from batch word lists.
type Generator struct {
	translator *Translator
	log        *zap.Logger
}

// NewGenerator creates a generator that translates with t.
func NewGenerator(t *Translator, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{translator: t, log: log}
}

// Generate translates the entries that need it and assembles a collection
// in entry order. Single failures skip the word; an open circuit or a done
// context aborts the run.
func (g *Generator) Generate(ctx context.Context, entries []batch.WordEntry, opts GenerateOptions) (GenerateResult, error) {
	var result GenerateResult

	b := collection.NewBuilder(1).Language(opts.Language)
	if opts.Name != "" {
		b.Variable(collection.NameVariable, opts.Name)
	}

	added := 0
	for i, entry := range entries {
		meanings := entry.Meanings
		if entry.NeedsTranslation {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			var err error
			meanings, err = g.translator.TranslateWord(ctx, entry.Word)
			switch {
			case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
				return result, fmt.Errorf("stopped after %d of %d words: %w", i, len(entries), err)
			case ctx.Err() != nil:
				return result, ctx.Err()
			case err != nil:
				g.log.Warn("skipping word", zap.String("word", entry.Word), zap.Error(err))
				result.Skipped = append(result.Skipped, entry.Word)
				continue
			}
			result.Translated++
		}

		if err := b.Define(entry.Word, meanings...); err != nil {
			g.log.Warn("skipping word", zap.String("word", entry.Word), zap.Error(err))
			result.Skipped = append(result.Skipped, entry.Word)
			continue
		}
		added++
		g.log.Info("added word", zap.String("word", entry.Word), zap.Int("progress", i+1), zap.Int("total", len(entries)))
	}

	if added == 0 {
		return result, fmt.Errorf("no words could be added: %w", ErrNoTranslation)
	}

	result.Collection = b.Build()
	return result, nil
}
