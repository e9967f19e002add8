// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// MaxWordLen is the longest word kept, in runes. Longer words are truncated.
const MaxWordLen = 50

// ErrEmpty is returned when a word list has no usable words.
var ErrEmpty = errors.New("word list is empty")

// List is a loaded word list.
type List struct {
	Words []string
	// Truncated counts words cut down to the maximum length.
	Truncated int
	// Skipped counts words rejected by the filter.
	Skipped int
}

// LoadWords reads one word per line from the provided file path. Words
// longer than maxLen runes are truncated; a nil filter keeps every word.
func LoadWords(path string, maxLen int, filter FilterFunc) (List, error) {
	file, err := os.Open(path)
	if err != nil {
		return List{}, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var list List
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if runes := []rune(line); maxLen > 0 && len(runes) > maxLen {
			line = string(runes[:maxLen])
			list.Truncated++
		}
		if filter != nil && !filter(line) {
			list.Skipped++
			continue
		}
		list.Words = append(list.Words, line)
	}
	if err := scanner.Err(); err != nil {
		return List{}, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(list.Words) == 0 {
		return List{}, ErrEmpty
	}
	return list, nil
}
