package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/langl/langl/internal/collection"
)

// WordEntry represents a word with optional meanings
type WordEntry struct {
	Word     string
	Meanings []string
	// NeedsTranslation is set when the line gave no meanings
	NeedsTranslation bool
}

// ReadBatchFile reads words from a file and returns WordEntry slice
// Supports formats:
// - Word only: "cat" (meanings will be translated)
// - With meanings: "cat = kot / kotek" (used as is)
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]WordEntry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	entries, err := ReadBatch(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", filename, err)
	}
	return entries, nil
}

// ReadBatch parses a word list from r.
func ReadBatch(r io.Reader) ([]WordEntry, error) {
	var entries []WordEntry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, meanings, found := strings.Cut(line, "=")
		word = strings.TrimSpace(word)
		if word == "" {
			// "= meaning" has nothing to ask for
			continue
		}

		entry := WordEntry{Word: word}
		if found {
			entry.Meanings = collection.SplitMeanings(meanings)
		}
		entry.NeedsTranslation = len(entry.Meanings) == 0
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

// Pending returns the words of entries that still need translating.
func Pending(entries []WordEntry) []string {
	var words []string
	for _, e := range entries {
		if e.NeedsTranslation {
			words = append(words, e.Word)
		}
	}
	return words
}
