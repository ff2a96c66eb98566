package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/langl/langl/internal/collection"
)

// Options configures a Translator. Zero values fall back to defaults.
type Options struct {
	SourceLanguage string
	TargetLanguage string
	// MaxMeanings caps the meanings kept per word.
	MaxMeanings int
	// FailureThreshold is the number of consecutive failures that opens
	// the circuit.
	FailureThreshold uint32
	// OpenTimeout is how long the circuit stays open before a trial call.
	OpenTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.SourceLanguage == "" {
		o.SourceLanguage = "English"
	}
	if o.TargetLanguage == "" {
		o.TargetLanguage = "Polish"
	}
	if o.MaxMeanings <= 0 {
		o.MaxMeanings = 3
	}
	if o.FailureThreshold == 0 {
		o.FailureThreshold = 3
	}
	if o.OpenTimeout <= 0 {
		o.OpenTimeout = 30 * time.Second
	}
	return o
}

// Translator asks a Provider for the meanings of single words.
type Translator struct {
	provider Provider
	opts     Options
	breaker  *gobreaker.CircuitBreaker
	cache    *TranslationCache
	log      *zap.Logger
}

// NewTranslator creates a new translator instance
func NewTranslator(p Provider, opts Options, log *zap.Logger) *Translator {
	if log == nil {
		log = zap.NewNop()
	}
	opts = opts.withDefaults()

	t := &Translator{
		provider: p,
		opts:     opts,
		cache:    NewTranslationCache(),
		log:      log,
	}
	t.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: 1,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			// A cancelled run says nothing about the provider
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("translation circuit changed state",
				zap.String("provider", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return t
}

// Prompt returns the prompt sent for word.
func (t *Translator) Prompt(word string) string {
	return fmt.Sprintf("Translate the %s word '%s' to %s. Respond with at most %d common translations separated by ' / ', nothing else.",
		t.opts.SourceLanguage, word, t.opts.TargetLanguage, t.opts.MaxMeanings)
}

// TranslateWord returns the meanings of word. Results are cached for the
// lifetime of the translator. While the circuit is open the provider is
// not called and gobreaker.ErrOpenState is returned.
func (t *Translator) TranslateWord(ctx context.Context, word string) ([]string, error) {
	if meanings, ok := t.cache.Get(word); ok {
		return meanings, nil
	}

	reply, err := t.breaker.Execute(func() (interface{}, error) {
		return t.provider.Complete(ctx, t.Prompt(word))
	})
	if err != nil {
		return nil, fmt.Errorf("translating %q: %w", word, err)
	}

	meanings := ParseReply(reply.(string), t.opts.MaxMeanings)
	if len(meanings) == 0 {
		return nil, fmt.Errorf("translating %q: %w", word, ErrNoTranslation)
	}

	t.log.Debug("translated word",
		zap.String("provider", t.provider.Name()),
		zap.String("word", word),
		zap.Strings("meanings", meanings))
	t.cache.Add(word, meanings)
	return meanings, nil
}

// Cache returns the translations made so far.
func (t *Translator) Cache() *TranslationCache {
	return t.cache
}

// ParseReply extracts up to limit distinct meanings from a model reply.
// Lines and ';' are treated like '/'; quotes and a trailing period are
// stripped from each meaning.
func ParseReply(reply string, limit int) []string {
	reply = strings.NewReplacer("\r", "", "\n", "/", ";", "/").Replace(reply)

	var meanings []string
	seen := make(map[string]bool)
	for _, m := range collection.SplitMeanings(reply) {
		m = strings.TrimSpace(strings.Trim(strings.TrimSuffix(m, "."), "\"'`"))
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		meanings = append(meanings, m)
		if limit > 0 && len(meanings) == limit {
			break
		}
	}
	return meanings
}

// TranslationCache stores translations in memory for batch operations
type TranslationCache struct {
	mu           sync.RWMutex
	translations map[string][]string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string][]string),
	}
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(word string, meanings []string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.translations[word] = append([]string(nil), meanings...)
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(word string) ([]string, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	meanings, ok := tc.translations[word]
	if !ok {
		return nil, false
	}
	return append([]string(nil), meanings...), true
}

// GetAll returns all cached translations
func (tc *TranslationCache) GetAll() map[string][]string {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string][]string, len(tc.translations))
	for k, v := range tc.translations {
		result[k] = append([]string(nil), v...)
	}
	return result
}
