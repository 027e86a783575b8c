package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/caiushowcroft/todo-log/pkg/models"
)

// yearDirPrefix groups entry directories by year, e.g. log-2026.
const yearDirPrefix = "log-"

// ErrEmptyEntry rejects saving an entry whose content is blank.
var ErrEmptyEntry = fmt.Errorf("cannot save empty log entry")

// SaveEntry writes the entry's content under
// BaseDir/log-YYYY/<timestamp>/log.txt and copies any attachments next to
// it. It returns the path of the written log file.
func SaveEntry(entry *models.Entry) (string, error) {
	if strings.TrimSpace(entry.Content) == "" {
		return "", ErrEmptyEntry
	}

	entryDir := filepath.Join(BaseDir, fmt.Sprintf("%s%d", yearDirPrefix, entry.Year()), entry.DirName())
	if err := os.MkdirAll(entryDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log entry directory: %w", err)
	}

	logPath := filepath.Join(entryDir, LogFileName)
	if err := os.WriteFile(logPath, []byte(entry.Content), 0644); err != nil {
		return "", fmt.Errorf("failed to write log file: %w", err)
	}

	for _, attachment := range entry.Attachments {
		if err := copyAttachment(attachment, entryDir); err != nil {
			return "", err
		}
	}

	return logPath, nil
}

// LoadEntry reads and parses one entry by its log file path.
func LoadEntry(path string) (*models.Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log %s: %w", path, err)
	}
	entry := models.ParseEntry(string(content), path)
	return &entry, nil
}

// LoadAllEntries walks every log-YYYY directory, parses each entry, and
// returns them sorted newest first. Unreadable individual entries are
// skipped; only a missing base directory is an error when it has never been
// initialized.
func LoadAllEntries() ([]models.Entry, error) {
	yearDirs, err := os.ReadDir(BaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", BaseDir, err)
	}

	var entries []models.Entry
	for _, yearDir := range yearDirs {
		if !yearDir.IsDir() || !strings.HasPrefix(yearDir.Name(), yearDirPrefix) {
			continue
		}

		yearPath := filepath.Join(BaseDir, yearDir.Name())
		entryDirs, err := os.ReadDir(yearPath)
		if err != nil {
			continue
		}

		for _, entryDir := range entryDirs {
			if !entryDir.IsDir() {
				continue
			}
			logPath := filepath.Join(yearPath, entryDir.Name(), LogFileName)
			content, err := os.ReadFile(logPath)
			if err != nil {
				continue
			}
			entries = append(entries, models.ParseEntry(string(content), logPath))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries, nil
}

// LoadAllTodos flattens the todos of every entry, preserving entry order
// (newest entry first, line order within an entry).
func LoadAllTodos() ([]models.Todo, error) {
	entries, err := LoadAllEntries()
	if err != nil {
		return nil, err
	}

	var todos []models.Todo
	for _, entry := range entries {
		todos = append(todos, entry.Todos...)
	}
	return todos, nil
}

func copyAttachment(src, destDir string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open attachment %s: %w", src, err)
	}
	defer in.Close()

	dest := filepath.Join(destDir, filepath.Base(src))
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create attachment copy %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy attachment %s: %w", src, err)
	}
	return nil
}
