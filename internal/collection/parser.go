package collection

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Line prefixes recognised on a trimmed line.
const (
	commentPrefix  = '#'
	languagePrefix = '@'
	variablePrefix = '$'

	wordSeparator    = '|'
	meaningSeparator = '/'
)

// WarningKind classifies a non-fatal parse problem.
type WarningKind int

const (
	// WarningVariableChanged means a variable was declared twice.
	WarningVariableChanged WarningKind = iota + 1
	// WarningWordChanged means a word was defined twice.
	WarningWordChanged
	// WarningExtraSeparator means a definition line had more than one '|'.
	WarningExtraSeparator
)

func (k WarningKind) String() string {
	switch k {
	case WarningVariableChanged:
		return "variable changed"
	case WarningWordChanged:
		return "word definition changed"
	case WarningExtraSeparator:
		return "invalid use of next '|'"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal problem found on one line.
type Warning struct {
	Line    int
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	if w.Message == "" {
		return fmt.Sprintf("%s | Line: %d", w.Kind, w.Line)
	}
	return fmt.Sprintf("%s | Line: %d | %s", w.Kind, w.Line, w.Message)
}

// Warnings is the ordered list of problems found while parsing one source.
type Warnings []Warning

// Count returns how many warnings are of the given kind.
func (ws Warnings) Count(kind WarningKind) int {
	n := 0
	for _, w := range ws {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Parse reads a whole collection source. Only read failures and invalid
// UTF-8 are errors; everything else is reported as a warning.
func Parse(r io.Reader, id int) (*Collection, Warnings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !utf8.Valid(data) {
		return nil, nil, fmt.Errorf("%w: %w", ErrIO, ErrInvalidText)
	}

	c, warnings := ParseString(string(data), id)
	return c, warnings, nil
}

// ParseString parses text that is already known to be valid.
func ParseString(text string, id int) (*Collection, Warnings) {
	c := newCollection(id)
	var warnings Warnings

	for i, raw := range strings.Split(text, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch line[0] {
		case commentPrefix:
			continue
		case languagePrefix:
			c.language = parseLanguage(line[1:])
		case variablePrefix:
			name, value := parseVariable(line[1:])
			if old, existed := c.setVariable(name, value); existed {
				warnings = append(warnings, Warning{
					Line:    lineNum,
					Kind:    WarningVariableChanged,
					Message: fmt.Sprintf("[ (%s) %s => %s ]", name, old, value),
				})
			}
		default:
			word, meanings, extra := parseDefinition(line)
			for range extra {
				warnings = append(warnings, Warning{Line: lineNum, Kind: WarningExtraSeparator})
			}
			if old, existed := c.setWord(word, meanings); existed {
				warnings = append(warnings, Warning{
					Line:    lineNum,
					Kind:    WarningWordChanged,
					Message: fmt.Sprintf("[ (%s) %q => %q ]", word, old, meanings),
				})
			}
		}
	}

	return c, warnings
}

// parseLanguage trims the directive and unwraps the `lang(xx)` form.
func parseLanguage(rest string) string {
	lang := strings.TrimSpace(rest)
	if inner, ok := strings.CutPrefix(lang, "lang("); ok && strings.HasSuffix(inner, ")") {
		return strings.TrimSpace(strings.TrimSuffix(inner, ")"))
	}
	return lang
}

// parseVariable splits on the first '=' only; the value may contain more.
func parseVariable(rest string) (string, string) {
	name, value, _ := strings.Cut(rest, "=")
	return strings.TrimSpace(name), strings.TrimSpace(value)
}

// parseDefinition splits `word | m1 / m2` and returns how many surplus
// '|' characters were dropped.
func parseDefinition(line string) (string, []string, int) {
	var word, meaning strings.Builder
	var meanings []string
	afterSeparator := false
	extra := 0

	for _, r := range line {
		switch {
		case r == wordSeparator && !afterSeparator:
			afterSeparator = true
		case r == wordSeparator:
			extra++
		case !afterSeparator:
			word.WriteRune(r)
		case r == meaningSeparator:
			meanings = appendMeaning(meanings, meaning.String())
			meaning.Reset()
		default:
			meaning.WriteRune(r)
		}
	}
	meanings = appendMeaning(meanings, meaning.String())

	return strings.TrimSpace(word.String()), meanings, extra
}

func appendMeaning(meanings []string, pending string) []string {
	if m := strings.TrimSpace(pending); m != "" {
		return append(meanings, m)
	}
	return meanings
}

// SplitMeanings splits a `m1 / m2` list the same way the right-hand side
// of a definition line is split: '|' is dropped and empty segments skipped.
func SplitMeanings(s string) []string {
	var meanings []string
	s = strings.ReplaceAll(s, string(wordSeparator), "")
	for _, segment := range strings.Split(s, string(meaningSeparator)) {
		meanings = appendMeaning(meanings, segment)
	}
	return meanings
}
