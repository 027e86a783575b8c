package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the accepted format for date query values and the TUI's
// date range inputs.
const DateLayout = "2006-01-02"

// ParseTodoQuery builds a TodoFilter from a query string of
// field:value tokens, e.g. "project:api person:bob completed:true".
// Repeated project/person fields accumulate; unknown fields are ignored.
func ParseTodoQuery(query string) (*TodoFilter, error) {
	f := &TodoFilter{}

	for _, token := range strings.Fields(query) {
		field, value, ok := cutField(token)
		if !ok {
			continue
		}
		switch field {
		case "project":
			f.Projects = append(f.Projects, value)
		case "person":
			f.People = append(f.People, value)
		case "completed":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("invalid completed value %q: %w", value, err)
			}
			f.ShowCompleted = b
		}
	}

	return f, nil
}

// ParseLogQuery builds a LogFilter from a query string of field:value
// tokens, e.g. "project:api after:2026-01-01 before:2026-02-01". The
// after/before bounds are inclusive.
func ParseLogQuery(query string) (*LogFilter, error) {
	f := &LogFilter{}

	for _, token := range strings.Fields(query) {
		field, value, ok := cutField(token)
		if !ok {
			continue
		}
		switch field {
		case "project":
			f.Projects = append(f.Projects, value)
		case "person":
			f.People = append(f.People, value)
		case "after":
			t, err := ParseDate(value)
			if err != nil {
				return nil, err
			}
			f.StartDate = &t
		case "before":
			t, err := ParseDate(value)
			if err != nil {
				return nil, err
			}
			f.EndDate = &t
		}
	}

	return f, nil
}

// ParseDate parses a YYYY-MM-DD date in the local time zone, matching how
// entry timestamps are derived.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}

// cutField splits a field:value query token. Tokens without a colon or with
// an empty value are skipped.
func cutField(token string) (field, value string, ok bool) {
	field, value, ok = strings.Cut(token, ":")
	if !ok || value == "" {
		return "", "", false
	}
	return strings.ToLower(field), value, true
}
