package collection

import (
	"fmt"
	"os"
	"strings"
)

// Format renders c back into the collection file format. Parsing the
// result yields the same language, variables and entries.
func Format(c *Collection) string {
	var b strings.Builder

	if c.language != "" {
		fmt.Fprintf(&b, "%c lang(%s)\n", languagePrefix, c.language)
	}
	for _, name := range c.sortedVariableNames() {
		fmt.Fprintf(&b, "%c %s=%s\n", variablePrefix, name, c.variables[name])
	}
	for _, word := range c.order {
		fmt.Fprintf(&b, "%s %c %s\n", word, wordSeparator,
			strings.Join(c.entries[word], " "+string(meaningSeparator)+" "))
	}

	return b.String()
}

// SaveFile writes c to path in the collection file format. An existing
// file is only replaced when overwrite is set.
func SaveFile(path string, c *Collection, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if _, err := f.WriteString(Format(c)); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
