package translation

import (
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"codeberg.org/langl/langl/internal/testutil"
)

func TestPrompt(t *testing.T) {
	tr := NewTranslator(&testutil.MockProvider{}, Options{SourceLanguage: "German", TargetLanguage: "English", MaxMeanings: 2}, nil)

	prompt := tr.Prompt("Haus")
	for _, want := range []string{"German word 'Haus'", "to English", "at most 2"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt %q does not contain %q", prompt, want)
		}
	}
}

func TestParseReply(t *testing.T) {
	tests := []struct {
		reply string
		limit int
		want  []string
	}{
		{"kot / kotek", 3, []string{"kot", "kotek"}},
		{"  \"kot\".  ", 3, []string{"kot"}},
		{"kot\nkotek\r\nkocur", 3, []string{"kot", "kotek", "kocur"}},
		{"kot; kotek / kot", 3, []string{"kot", "kotek"}},
		{"a / b / c / d", 2, []string{"a", "b"}},
		{"a / b / c / d", 0, []string{"a", "b", "c", "d"}},
		{" / | ", 3, nil},
	}

	for _, tt := range tests {
		if got := ParseReply(tt.reply, tt.limit); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseReply(%q, %d) = %v, want %v", tt.reply, tt.limit, got, tt.want)
		}
	}
}

func TestTranslateWord_Cached(t *testing.T) {
	mock := &testutil.MockProvider{Replies: map[string]string{"cat": "kot / kotek"}}
	tr := NewTranslator(mock, Options{}, nil)

	for i := 0; i < 2; i++ {
		meanings, err := tr.TranslateWord(context.Background(), "cat")
		if err != nil {
			t.Fatalf("TranslateWord failed: %v", err)
		}
		if !reflect.DeepEqual(meanings, []string{"kot", "kotek"}) {
			t.Errorf("meanings = %v", meanings)
		}
	}

	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
	if got := tr.Cache().GetAll(); !reflect.DeepEqual(got, map[string][]string{"cat": {"kot", "kotek"}}) {
		t.Errorf("cache = %v", got)
	}
}

func TestTranslateWord_EmptyReply(t *testing.T) {
	mock := &testutil.MockProvider{Replies: map[string]string{"cat": " . "}}
	tr := NewTranslator(mock, Options{}, nil)

	_, err := tr.TranslateWord(context.Background(), "cat")
	if !errors.Is(err, ErrNoTranslation) {
		t.Errorf("expected ErrNoTranslation, got %v", err)
	}
	if _, ok := tr.Cache().Get("cat"); ok {
		t.Error("failed translation was cached")
	}
}

func TestTranslateWord_CircuitOpens(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	mock := &testutil.MockProvider{Err: errors.New("rate limited")}
	tr := NewTranslator(mock, Options{FailureThreshold: 2, OpenTimeout: time.Hour}, zap.New(core))

	for i := 0; i < 2; i++ {
		if _, err := tr.TranslateWord(context.Background(), "cat"); err == nil {
			t.Fatal("expected an error")
		}
	}

	_, err := tr.TranslateWord(context.Background(), "dog")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider called %d times, want 2", mock.CallCount())
	}
	if logs.FilterMessage("translation circuit changed state").Len() != 1 {
		t.Errorf("expected one state change log entry, got %v", logs.All())
	}
}

func TestTranslateWord_CancelDoesNotTrip(t *testing.T) {
	mock := &testutil.MockProvider{Replies: map[string]string{"cat": "kot"}}
	tr := NewTranslator(mock, Options{FailureThreshold: 1, OpenTimeout: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := tr.TranslateWord(ctx, "cat"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if _, err := tr.TranslateWord(context.Background(), "cat"); err != nil {
		t.Errorf("circuit opened after a cancelled call: %v", err)
	}
}

func TestTranslationCache(t *testing.T) {
	cache := NewTranslationCache()

	if _, found := cache.Get("cat"); found {
		t.Error("Expected not found in empty cache")
	}
	if all := cache.GetAll(); len(all) != 0 {
		t.Errorf("Expected empty map, got %v", all)
	}

	meanings := []string{"kot"}
	cache.Add("cat", meanings)
	meanings[0] = "modified"

	got, found := cache.Get("cat")
	if !found || !reflect.DeepEqual(got, []string{"kot"}) {
		t.Errorf("Get(cat) = %v, %v", got, found)
	}

	// Returned slices and maps are copies
	got[0] = "modified"
	all := cache.GetAll()
	all["cat"][0] = "modified"
	if again, _ := cache.Get("cat"); again[0] != "kot" {
		t.Error("Cache was modified through a returned value")
	}

	cache.Add("cat", []string{"kot", "kotek"})
	if got, _ := cache.Get("cat"); len(got) != 2 {
		t.Errorf("overwrite failed: %v", got)
	}
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	if _, err := NewProvider(ctx, ProviderConfig{Name: ProviderOpenAI}); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
	if _, err := NewProvider(ctx, ProviderConfig{Name: ProviderGemini}); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
	if _, err := NewProvider(ctx, ProviderConfig{Name: "deepl"}); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}

	p, err := NewProvider(ctx, ProviderConfig{Name: ProviderOpenAI, OpenAIKey: "test-api-key"})
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if p.Name() != ProviderOpenAI {
		t.Errorf("Name() = %q", p.Name())
	}
	if p.(*OpenAIProvider).model != DefaultOpenAIModel {
		t.Errorf("model = %q, want default", p.(*OpenAIProvider).model)
	}
}

func TestGemini_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}

	p, err := NewGeminiProvider(context.Background(), apiKey, "")
	if err != nil {
		t.Fatalf("NewGeminiProvider failed: %v", err)
	}
	tr := NewTranslator(p, Options{}, nil)

	meanings, err := tr.TranslateWord(context.Background(), "cat")
	if err != nil {
		t.Fatalf("TranslateWord failed: %v", err)
	}
	t.Logf("Translation of 'cat': %v", meanings)
}
