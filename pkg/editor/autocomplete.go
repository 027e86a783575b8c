package editor

import (
	"strings"
	"unicode"
)

// SuggestionKind says which name set the active suggestions come from.
type SuggestionKind int

const (
	SuggestNone SuggestionKind = iota
	SuggestProject
	SuggestPerson
)

// Marker returns the tag marker character for the kind.
func (k SuggestionKind) Marker() string {
	switch k {
	case SuggestProject:
		return "#"
	case SuggestPerson:
		return "@"
	}
	return ""
}

// Autocomplete holds the derived suggestion state for a buffer. It retains
// nothing across edits that cannot be rederived: Update recomputes the whole
// state from the buffer and the known name sets.
type Autocomplete struct {
	Active      bool
	Kind        SuggestionKind
	Suggestions []string
	Selected    int
}

// Update recomputes suggestions from the buffer's cursor context. The word
// under construction runs from the nearest whitespace before the cursor to
// the cursor; a "#"- or "@"-prefixed word of length > 1 activates
// case-insensitive prefix matching against the corresponding name set.
// Anything else deactivates the popup.
func (a *Autocomplete) Update(b *Buffer, projects, people []string) {
	a.reset()

	word := currentWord(b)
	switch {
	case strings.HasPrefix(word, "#") && len(word) > 1:
		a.Kind = SuggestProject
		a.Suggestions = prefixMatches(word[1:], projects)
	case strings.HasPrefix(word, "@") && len(word) > 1:
		a.Kind = SuggestPerson
		a.Suggestions = prefixMatches(word[1:], people)
	default:
		return
	}

	a.Active = len(a.Suggestions) > 0
	if !a.Active {
		a.Kind = SuggestNone
		a.Suggestions = nil
	}
}

// Next moves the selection down, wrapping to the top.
func (a *Autocomplete) Next() {
	if a.Active {
		a.Selected = (a.Selected + 1) % len(a.Suggestions)
	}
}

// Prev moves the selection up, wrapping to the bottom.
func (a *Autocomplete) Prev() {
	if a.Active {
		a.Selected = (a.Selected + len(a.Suggestions) - 1) % len(a.Suggestions)
	}
}

// Accept replaces the word under construction with the selected suggestion,
// marker and trailing space included, and puts the cursor right after the
// space. The replacement splices rather than overwrites, so suggestions
// longer or shorter than the typed prefix are handled correctly. The popup
// deactivates afterwards.
func (a *Autocomplete) Accept(b *Buffer) {
	if !a.Active || len(a.Suggestions) == 0 {
		return
	}

	inserted := a.Kind.Marker() + a.Suggestions[a.Selected] + " "
	start := wordStart(b)

	content := []rune(b.Content())
	replaced := string(content[:start]) + inserted + string(content[b.Cursor():])

	b.SetContent(replaced)
	b.cursor = start + len([]rune(inserted))

	a.reset()
}

// Dismiss hides the popup without touching the buffer. The next Update
// rederives suggestions as usual.
func (a *Autocomplete) Dismiss() {
	a.reset()
}

func (a *Autocomplete) reset() {
	a.Active = false
	a.Kind = SuggestNone
	a.Suggestions = nil
	a.Selected = 0
}

// wordStart returns the rune offset just after the nearest whitespace before
// the cursor, or 0 when none exists.
func wordStart(b *Buffer) int {
	before := b.content[:b.cursor]
	for i := len(before) - 1; i >= 0; i-- {
		if unicode.IsSpace(before[i]) {
			return i + 1
		}
	}
	return 0
}

// currentWord is the substring from the word start to the cursor.
func currentWord(b *Buffer) string {
	return string(b.content[wordStart(b):b.cursor])
}

// prefixMatches returns the names whose lowercase form starts with the
// lowercase prefix, in the order the names are known.
func prefixMatches(prefix string, names []string) []string {
	prefix = strings.ToLower(prefix)
	var matches []string
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}
