package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	return path
}

func TestLoadWordsSkipsBlankLines(t *testing.T) {
	path := writeList(t, "cat\n\n  dog  \nfish")
	list, err := LoadWords(path, MaxWordLen, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if strings.Join(list.Words, ",") != "cat,dog,fish" {
		t.Fatalf("unexpected words %v", list.Words)
	}
}

func TestLoadWordsTruncatesLongWords(t *testing.T) {
	long := strings.Repeat("a", MaxWordLen+5)
	path := writeList(t, long+"\nok\n")
	list, err := LoadWords(path, MaxWordLen, FilterForLang("en"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if list.Truncated != 1 || len([]rune(list.Words[0])) != MaxWordLen {
		t.Fatalf("expected one truncated word, got %+v", list)
	}
}

func TestLoadWordsFilters(t *testing.T) {
	path := writeList(t, "hello\nCafé\nworld\n")
	list, err := LoadWords(path, MaxWordLen, FilterForLang("en"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(list.Words) != 2 || list.Skipped != 1 {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := writeList(t, "\n   \nÉCOLE\n")
	if _, err := LoadWords(path, MaxWordLen, FilterForLang("en")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestLoadWordsMissingFile(t *testing.T) {
	_, err := LoadWords(filepath.Join(t.TempDir(), "nope.txt"), MaxWordLen, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
