package models

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// EntryDirLayout is the directory-name timestamp format each entry lives
// under, e.g. log-2026/2026-08-26_09-15-42/log.txt.
const EntryDirLayout = "2006-01-02_15-04-05"

// Todo line markers.
const (
	MarkerOpen = "[]"
	MarkerDone = "[x]"
)

// ParseEntry derives an Entry from raw note text. It is total: any input
// produces a best-effort Entry with zero or more extracted tags and todos.
// The entry timestamp comes from the parent directory name of path when it
// matches EntryDirLayout, and defaults to now otherwise.
func ParseEntry(content, path string) Entry {
	entry := Entry{
		Timestamp: time.Now(),
		Content:   content,
		Path:      path,
	}

	if dir := filepath.Base(filepath.Dir(path)); dir != "" {
		if ts, err := time.ParseInLocation(EntryDirLayout, dir, time.Local); err == nil {
			entry.Timestamp = ts
		}
	}

	entry.Projects = extractTags(content, '#')
	entry.People = extractTags(content, '@')

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, MarkerOpen):
			entry.Todos = append(entry.Todos, Todo{
				Text:       strings.TrimSpace(trimmed[len(MarkerOpen):]),
				Completed:  false,
				LineNumber: i,
				Projects:   entry.Projects,
				People:     entry.People,
				Path:       path,
			})
		case strings.HasPrefix(trimmed, MarkerDone), strings.HasPrefix(trimmed, "[X]"):
			entry.Todos = append(entry.Todos, Todo{
				Text:       strings.TrimSpace(trimmed[len(MarkerDone):]),
				Completed:  true,
				LineNumber: i,
				Projects:   entry.Projects,
				People:     entry.People,
				Path:       path,
			})
		}
	}

	return entry
}

// extractTags scans whitespace-delimited tokens for marker-prefixed tags.
// The marker is stripped, then any leading/trailing characters that are not
// alphanumeric, '-' or '_' are trimmed, so "#foo," yields "foo". Duplicates
// are dropped; first-seen order is preserved.
func extractTags(content string, marker rune) []string {
	var tags []string
	seen := make(map[string]bool)

	for _, token := range strings.Fields(content) {
		runes := []rune(token)
		if len(runes) < 2 || runes[0] != marker {
			continue
		}
		tag := strings.TrimFunc(string(runes[1:]), func(r rune) bool {
			return !isTagRune(r)
		})
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	return tags
}

func isTagRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
