package collection

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder(3).Language(" pl ").Variable("name", "Zwierzęta\n domowe")

	if err := b.Define("kot", "cat", " tomcat "); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if err := b.Define("pies", "dog / hound", ""); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	c := b.Build()

	if c.ID() != 3 || c.Language() != "pl" {
		t.Errorf("got id %d language %q", c.ID(), c.Language())
	}
	if c.Name() != "Zwierzęta  domowe" {
		t.Errorf("Name() = %q", c.Name())
	}
	want := map[string][]string{
		"kot":  {"cat", "tomcat"},
		"pies": {"dog   hound"},
	}
	if !reflect.DeepEqual(c.Entries(), want) {
		t.Errorf("Entries() = %v, want %v", c.Entries(), want)
	}

	reparsed, warnings := ParseString(Format(c), 3)
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if !reflect.DeepEqual(reparsed.Entries(), c.Entries()) {
		t.Errorf("reparsed entries %v, want %v", reparsed.Entries(), c.Entries())
	}
}

func TestBuilder_DefineInvalid(t *testing.T) {
	for _, word := range []string{"", "  ", "a|b", "# note", "@ en", "$ x=1", "two\nlines"} {
		err := NewBuilder(1).Define(word, "x")
		if !errors.Is(err, ErrInvalidEntry) {
			t.Errorf("Define(%q) error = %v, want ErrInvalidEntry", word, err)
		}
	}
}
