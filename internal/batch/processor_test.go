package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []WordEntry
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "words with meanings",
			fileContent: `cat = kot / kotek
dog = pies
house = dom`,
			want: []WordEntry{
				{Word: "cat", Meanings: []string{"kot", "kotek"}},
				{Word: "dog", Meanings: []string{"pies"}},
				{Word: "house", Meanings: []string{"dom"}},
			},
		},
		{
			name: "mixed format",
			fileContent: `apple
cat = kot
dog
bread = chleb`,
			want: []WordEntry{
				{Word: "apple", NeedsTranslation: true},
				{Word: "cat", Meanings: []string{"kot"}},
				{Word: "dog", NeedsTranslation: true},
				{Word: "bread", Meanings: []string{"chleb"}},
			},
		},
		{
			name: "empty lines comments and whitespace",
			fileContent: `
# pets
apple

cat = kot  

  dog  

`,
			want: []WordEntry{
				{Word: "apple", NeedsTranslation: true},
				{Word: "cat", Meanings: []string{"kot"}},
				{Word: "dog", NeedsTranslation: true},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "apple\r\ncat = kot\r\ndog",
			want: []WordEntry{
				{Word: "apple", NeedsTranslation: true},
				{Word: "cat", Meanings: []string{"kot"}},
				{Word: "dog", NeedsTranslation: true},
			},
		},
		{
			name:        "multiple equals signs",
			fileContent: `test = word = with = equals`,
			want: []WordEntry{
				{Word: "test", Meanings: []string{"word = with = equals"}},
			},
		},
		{
			name: "missing word or meanings",
			fileContent: `= apple
cat =
dog = / |`,
			want: []WordEntry{
				{Word: "cat", NeedsTranslation: true},
				{Word: "dog", NeedsTranslation: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "test.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_FileNotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestPending(t *testing.T) {
	entries, err := ReadBatch(strings.NewReader("apple\ncat = kot\ndog\n"))
	if err != nil {
		t.Fatal(err)
	}

	got := Pending(entries)
	want := []string{"apple", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Pending() = %v, want %v", got, want)
	}
}
