package collection

import (
	"fmt"
	"strings"
)

// Builder assembles a collection in code, for example from translated word
// lists. The result renders with Format into a file that parses back to the
// same collection.
type Builder struct {
	c *Collection
}

// NewBuilder starts an empty collection with the given id.
func NewBuilder(id int) *Builder {
	return &Builder{c: newCollection(id)}
}

// Language sets the language tag.
func (b *Builder) Language(lang string) *Builder {
	b.c.language = strings.TrimSpace(lang)
	return b
}

// Variable sets a `$ name=value` variable.
func (b *Builder) Variable(name, value string) *Builder {
	oneLine := strings.NewReplacer("\n", " ", "\r", " ")
	b.c.setVariable(strings.TrimSpace(oneLine.Replace(name)), strings.TrimSpace(oneLine.Replace(value)))
	return b
}

// Define adds or replaces a word. Separator characters are removed from
// the meanings and empty meanings are dropped.
func (b *Builder) Define(word string, meanings ...string) error {
	word = strings.TrimSpace(word)
	switch {
	case word == "":
		return fmt.Errorf("%w: empty word", ErrInvalidEntry)
	case strings.ContainsRune(word, wordSeparator):
		return fmt.Errorf("%w: word %q contains %q", ErrInvalidEntry, word, wordSeparator)
	case strings.ContainsRune(word, '\n'):
		return fmt.Errorf("%w: word %q spans lines", ErrInvalidEntry, word)
	case word[0] == commentPrefix || word[0] == languagePrefix || word[0] == variablePrefix:
		return fmt.Errorf("%w: word %q starts with a directive prefix", ErrInvalidEntry, word)
	}

	flatten := strings.NewReplacer("\n", " ", "\r", " ", string(meaningSeparator), " ")
	var clean []string
	for _, m := range meanings {
		m = flatten.Replace(m)
		clean = append(clean, SplitMeanings(m)...)
	}
	b.c.setWord(word, clean)
	return nil
}

// Build returns the collection. The builder must not be used afterwards.
func (b *Builder) Build() *Collection {
	c := b.c
	b.c = nil
	return c
}
