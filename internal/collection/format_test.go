package collection

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFormat_Reparse(t *testing.T) {
	sources := []string{
		"@ lang(en)\n$ name=Basics\ncat | kot / kotek\ndog | pies\n",
		"# no language\n$ b = 2\n$ a = x=y\nhouse | dom / domek / chata\n",
		"@ lang(lang(x))\nlonely\ncat | kot\ncat | kocur\n",
		"tree | / drzewo //\nsun|słońce|\n",
	}

	for _, src := range sources {
		original, _ := ParseString(src, 1)
		text := Format(original)
		reparsed, warnings := ParseString(text, 1)

		if len(warnings) != 0 {
			t.Errorf("Formatted text produced warnings: %v\n%s", warnings, text)
		}
		if !reflect.DeepEqual(reparsed.Entries(), original.Entries()) {
			t.Errorf("Entries differ after reparse:\n got %v\nwant %v\ntext:\n%s", reparsed.Entries(), original.Entries(), text)
		}
		if !reflect.DeepEqual(reparsed.Words(), original.Words()) {
			t.Errorf("Word order differs after reparse: got %v, want %v", reparsed.Words(), original.Words())
		}
		if !reflect.DeepEqual(reparsed.Variables(), original.Variables()) {
			t.Errorf("Variables differ after reparse: got %v, want %v", reparsed.Variables(), original.Variables())
		}
		if reparsed.Language() != original.Language() {
			t.Errorf("Language differs after reparse: got %q, want %q", reparsed.Language(), original.Language())
		}
	}
}

func TestFormat_Layout(t *testing.T) {
	c, _ := ParseString("cat | kot / kotek\n$ name=Basics\n@ en\n", 1)

	want := "@ lang(en)\n$ name=Basics\ncat | kot / kotek\n"
	if got := Format(c); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestSaveFile(t *testing.T) {
	c, _ := ParseString("@ lang(en)\ncat | kot\n", 1)
	path := filepath.Join(t.TempDir(), "basics.txt")

	if err := SaveFile(path, c, false); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "@ lang(en)\ncat | kot\n" {
		t.Errorf("unexpected file content %q", data)
	}

	if err := SaveFile(path, c, false); !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO for an existing file, got %v", err)
	}
	if err := SaveFile(path, c, true); err != nil {
		t.Errorf("overwrite failed: %v", err)
	}
}
