package collection

import (
	"fmt"
	"sort"
)

// NameVariable is the variable conventionally used as the display name.
const NameVariable = "name"

const unnamed = "(no name variable)"

// Collection is one parsed vocabulary file. It is not modified after
// Parse returns, so a single value can be shared by every screen.
type Collection struct {
	id        int
	language  string
	variables map[string]string
	order     []string
	entries   map[string][]string
}

func newCollection(id int) *Collection {
	return &Collection{
		id:        id,
		variables: make(map[string]string),
		entries:   make(map[string][]string),
	}
}

// ID returns the load-order identifier of the collection.
func (c *Collection) ID() int {
	return c.id
}

// Language returns the tag of the `@` directive, or "" if there was none.
func (c *Collection) Language() string {
	return c.language
}

// Variable returns the value of a `$name=value` variable.
func (c *Collection) Variable(name string) (string, bool) {
	v, ok := c.variables[name]
	return v, ok
}

// Variables returns a copy of all variables.
func (c *Collection) Variables() map[string]string {
	result := make(map[string]string, len(c.variables))
	for k, v := range c.variables {
		result[k] = v
	}
	return result
}

// Name returns the `name` variable, or "" if it is not declared.
func (c *Collection) Name() string {
	return c.variables[NameVariable]
}

// Len returns the number of distinct words.
func (c *Collection) Len() int {
	return len(c.order)
}

// Words returns the word keys in the order they were first defined.
func (c *Collection) Words() []string {
	words := make([]string, len(c.order))
	copy(words, c.order)
	return words
}

// Meanings returns the accepted meanings of word.
func (c *Collection) Meanings(word string) ([]string, bool) {
	meanings, ok := c.entries[word]
	if !ok {
		return nil, false
	}
	result := make([]string, len(meanings))
	copy(result, meanings)
	return result, true
}

// Entries returns a copy of the word to meanings mapping.
func (c *Collection) Entries() map[string][]string {
	result := make(map[string][]string, len(c.entries))
	for word := range c.entries {
		result[word], _ = c.Meanings(word)
	}
	return result
}

// Accepts reports whether answer is literally one of the meanings of word.
// No trimming or case folding is applied.
func (c *Collection) Accepts(word, answer string) bool {
	for _, m := range c.entries[word] {
		if m == answer {
			return true
		}
	}
	return false
}

// Equal compares collections by identity (load id), not content.
func (c *Collection) Equal(other *Collection) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.id == other.id
}

// String renders the display title, "<language> - <name>".
func (c *Collection) String() string {
	name := c.Name()
	if name == "" {
		name = unnamed
	}
	return fmt.Sprintf("%s - %s", c.language, name)
}

func (c *Collection) setVariable(name, value string) (string, bool) {
	old, existed := c.variables[name]
	c.variables[name] = value
	return old, existed
}

// setWord keeps the position of the first definition when a word is redefined.
func (c *Collection) setWord(word string, meanings []string) ([]string, bool) {
	old, existed := c.entries[word]
	if !existed {
		c.order = append(c.order, word)
	}
	c.entries[word] = meanings
	return old, existed
}

func (c *Collection) sortedVariableNames() []string {
	names := make([]string, 0, len(c.variables))
	for name := range c.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
